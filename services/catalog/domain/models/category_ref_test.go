package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestCategoryRef_DisplayName(t *testing.T) {
	id := uuid.New()

	t.Run("absent reference displays Uncategorized", func(t *testing.T) {
		ref := NoCategory()
		if got := ref.DisplayName(); got != DisplayUncategorized {
			t.Fatalf("expected %q, got %q", DisplayUncategorized, got)
		}
	})

	t.Run("dangling reference displays Unknown", func(t *testing.T) {
		ref := UnresolvedCategory(id)
		if got := ref.DisplayName(); got != DisplayUnknown {
			t.Fatalf("expected %q, got %q", DisplayUnknown, got)
		}
	})

	t.Run("resolved reference displays the category name", func(t *testing.T) {
		ref := ResolvedCategory(id, "Peripherals")
		if got := ref.DisplayName(); got != "Peripherals" {
			t.Fatalf("expected Peripherals, got %q", got)
		}
	})
}

func TestCategoryRef_ID(t *testing.T) {
	id := uuid.New()

	if _, set := NoCategory().ID(); set {
		t.Fatal("NoCategory must report no id")
	}

	gotID, set := UnresolvedCategory(id).ID()
	if !set || gotID != id {
		t.Fatalf("UnresolvedCategory: expected (%v, true), got (%v, %v)", id, gotID, set)
	}

	gotID, set = ResolvedCategory(id, "x").ID()
	if !set || gotID != id {
		t.Fatalf("ResolvedCategory: expected (%v, true), got (%v, %v)", id, gotID, set)
	}
}

// A zero CategoryRef must behave exactly like NoCategory so repositories can
// rely on the zero value for rows without a category.
func TestCategoryRef_ZeroValue(t *testing.T) {
	var ref CategoryRef
	if ref != NoCategory() {
		t.Fatal("zero CategoryRef must equal NoCategory()")
	}
	if ref.DisplayName() != DisplayUncategorized {
		t.Fatalf("expected %q, got %q", DisplayUncategorized, ref.DisplayName())
	}
}
