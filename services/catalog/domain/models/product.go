package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Product is the catalog aggregate. The stock field is owned by the inventory
// context: only the stock mutation engine may change it after creation, and
// every such change refreshes UpdatedAt and lands in the stock ledger.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    CategoryRef // weak reference; may be absent or dangling
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct constructs a valid Product with generated ID and current timestamps.
func NewProduct(name, description string, price float64, stock int, category CategoryRef, imageURL string) (*Product, error) {
	p := &Product{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		Category:    category,
		ImageURL:    imageURL,
		CreatedAt:   time.Now().UTC(),
	}
	p.UpdatedAt = p.CreatedAt
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate enforces the structural constraints of the aggregate.
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if p.Description == "" {
		return fmt.Errorf("product description is required")
	}
	if p.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if p.Stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}
	return nil
}
