package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Category groups products for display and filtering. Products hold only a
// weak reference to it: deleting a category leaves referencing products in
// place with a dangling reference.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory constructs a valid Category with generated ID and current timestamps.
func NewCategory(name, description string) (*Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	c := &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	c.UpdatedAt = c.CreatedAt
	return c, nil
}
