package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrProductNotFound indicates the referenced product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidMutationType indicates the mutation type is not add, subtract, or set.
	ErrInvalidMutationType = errors.New("invalid type, must be: add, subtract, or set")

	// ErrInvalidQuantity indicates the quantity is negative or exceeds the
	// per-mutation cap.
	ErrInvalidQuantity = errors.New("quantity out of range")
)
