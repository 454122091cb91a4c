package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrCategoryNotFound indicates the requested category does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidProduct indicates the product violates domain constraints.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrInvalidCategory indicates the category violates domain constraints.
	ErrInvalidCategory = errors.New("invalid category")
)
