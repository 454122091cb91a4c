package models

import (
	"time"

	"github.com/google/uuid"
)

// StockChange is one entry in the append-only stock ledger. Entries are never
// updated or deleted; the ledger survives product deletion so historical
// audits stay intact.
//
// Invariants: ChangeAmount == NewStock - PreviousStock, and NewStock >= 0.
// The owning product's current stock always equals the NewStock of its most
// recent entry.
type StockChange struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	PreviousStock int
	NewStock      int
	ChangeAmount  int
	Type          MutationType
	Reason        string // optional free-text annotation
	CreatedAt     time.Time
}

// NewStockChange constructs a ledger entry for a mutation of type t applied at
// previousStock with the given quantity. ID and CreatedAt are generated here;
// the ID is a time-ordered UUIDv7, so sorting by id breaks created_at ties in
// generation order. Persistence must store both verbatim.
func NewStockChange(productID uuid.UUID, t MutationType, previousStock, quantity int, reason string) *StockChange {
	newStock, changeAmount := t.Apply(previousStock, quantity)
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does, matching uuid.New's
		// panic behavior.
		panic(err)
	}
	return &StockChange{
		ID:            id,
		ProductID:     productID,
		PreviousStock: previousStock,
		NewStock:      newStock,
		ChangeAmount:  changeAmount,
		Type:          t,
		Reason:        reason,
		CreatedAt:     time.Now().UTC(),
	}
}

// StockChangeResult is what a successful mutation reports back to the caller.
type StockChangeResult struct {
	ProductID     uuid.UUID
	PreviousStock int
	NewStock      int
	ChangeAmount  int
}
