package models

import (
	"fmt"

	domain "github.com/ghuser/product-catalog/services/inventory/domain"
)

// MutationType is a value object naming one of the three stock mutation
// policies. It determines how a request's quantity combines with the
// product's current stock.
type MutationType string

const (
	// MutationAdd increases stock by the quantity.
	MutationAdd MutationType = "add"
	// MutationSubtract decreases stock by the quantity, clamped at zero.
	MutationSubtract MutationType = "subtract"
	// MutationSet replaces stock with the quantity.
	MutationSet MutationType = "set"
)

// MaxMutationQuantity caps the quantity of a single mutation. Stock columns
// are 32-bit integers in the database; one billion keeps any single mutation
// comfortably inside that range.
const MaxMutationQuantity = 1_000_000_000

// ParseMutationType validates s against the three known policies.
func ParseMutationType(s string) (MutationType, error) {
	switch MutationType(s) {
	case MutationAdd, MutationSubtract, MutationSet:
		return MutationType(s), nil
	default:
		return "", fmt.Errorf("%w (got %q)", domain.ErrInvalidMutationType, s)
	}
}

// String returns the underlying string value.
func (t MutationType) String() string {
	return string(t)
}

// Apply computes the mutation outcome for a product at previousStock.
//
//	add:      newStock = previousStock + quantity
//	subtract: newStock = max(0, previousStock - quantity); the recorded delta
//	          reflects the clamped change, not the requested magnitude
//	set:      newStock = quantity
//
// changeAmount is always newStock - previousStock, so the ledger records the
// true change. quantity must already be validated as non-negative.
func (t MutationType) Apply(previousStock, quantity int) (newStock, changeAmount int) {
	switch t {
	case MutationAdd:
		newStock = previousStock + quantity
	case MutationSubtract:
		newStock = previousStock - quantity
		if newStock < 0 {
			newStock = 0
		}
	case MutationSet:
		newStock = quantity
	default:
		// Unreachable for values produced by ParseMutationType.
		newStock = previousStock
	}
	return newStock, newStock - previousStock
}
