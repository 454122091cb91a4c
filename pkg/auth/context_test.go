package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestWithUserID_UserIDFromCtx(t *testing.T) {
	userID := uuid.New()
	ctx := WithUserID(context.Background(), userID)

	got, err := UserIDFromCtx(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != userID {
		t.Fatalf("expected %v, got %v", userID, got)
	}
}

func TestUserIDFromCtx_EmptyContext(t *testing.T) {
	_, err := UserIDFromCtx(context.Background())
	if !errors.Is(err, ErrUserIDNotFound) {
		t.Fatalf("expected ErrUserIDNotFound, got %v", err)
	}
}

func TestUserIDFromCtx_NilUUID(t *testing.T) {
	ctx := WithUserID(context.Background(), uuid.Nil)
	_, err := UserIDFromCtx(ctx)
	if !errors.Is(err, ErrUserIDNotFound) {
		t.Fatalf("expected ErrUserIDNotFound for uuid.Nil, got %v", err)
	}
}

func TestUserIDFromCtx_Isolation(t *testing.T) {
	userID1 := uuid.New()
	userID2 := uuid.New()

	ctx1 := WithUserID(context.Background(), userID1)
	ctx2 := WithUserID(context.Background(), userID2)

	got1, _ := UserIDFromCtx(ctx1)
	got2, _ := UserIDFromCtx(ctx2)

	if got1 != userID1 {
		t.Fatalf("ctx1: expected %v, got %v", userID1, got1)
	}
	if got2 != userID2 {
		t.Fatalf("ctx2: expected %v, got %v", userID2, got2)
	}
	if got1 == got2 {
		t.Fatal("expected different UserIDs in isolated contexts")
	}
}
