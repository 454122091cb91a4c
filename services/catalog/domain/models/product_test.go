package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewProduct(t *testing.T) {
	t.Run("returns product with generated ID and timestamps", func(t *testing.T) {
		before := time.Now().UTC()
		p, err := NewProduct("Keyboard", "Tenkeyless", 129.99, 25, NoCategory(), "")
		after := time.Now().UTC()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID == (uuid.UUID{}) {
			t.Fatal("expected non-zero UUID for ID")
		}
		if p.CreatedAt.Before(before) || p.CreatedAt.After(after) {
			t.Fatalf("CreatedAt %v not between %v and %v", p.CreatedAt, before, after)
		}
		if !p.UpdatedAt.Equal(p.CreatedAt) {
			t.Fatal("UpdatedAt must equal CreatedAt on creation")
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		if _, err := NewProduct("", "desc", 1, 0, NoCategory(), ""); err == nil {
			t.Fatal("expected error for empty name")
		}
	})

	t.Run("rejects empty description", func(t *testing.T) {
		if _, err := NewProduct("name", "", 1, 0, NoCategory(), ""); err == nil {
			t.Fatal("expected error for empty description")
		}
	})

	t.Run("rejects negative price", func(t *testing.T) {
		if _, err := NewProduct("name", "desc", -0.01, 0, NoCategory(), ""); err == nil {
			t.Fatal("expected error for negative price")
		}
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		if _, err := NewProduct("name", "desc", 1, -1, NoCategory(), ""); err == nil {
			t.Fatal("expected error for negative stock")
		}
	})

	t.Run("accepts zero price and zero stock", func(t *testing.T) {
		if _, err := NewProduct("name", "desc", 0, 0, NoCategory(), ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNewCategory(t *testing.T) {
	t.Run("returns category with generated ID", func(t *testing.T) {
		c, err := NewCategory("Peripherals", "Input devices")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID == (uuid.UUID{}) {
			t.Fatal("expected non-zero UUID for ID")
		}
		if c.Name != "Peripherals" || c.Description != "Input devices" {
			t.Fatalf("unexpected fields: %+v", c)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		if _, err := NewCategory("", "desc"); err == nil {
			t.Fatal("expected error for empty name")
		}
	})

	t.Run("accepts empty description", func(t *testing.T) {
		if _, err := NewCategory("Peripherals", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
