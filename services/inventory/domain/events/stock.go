package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicStockChanged is the Watermill topic published when a stock mutation commits.
const TopicStockChanged = "stock.changed"

// StockChangedEvent is published transactionally with each successful stock
// mutation (outbox pattern), so consumers never observe an event for a change
// that did not commit. The worker derives low-stock alerts from it.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicStockChanged).
type StockChangedEvent struct {
	EventID       uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version       int       `json:"version"`  // Schema version; increment on breaking changes
	ProductID     uuid.UUID `json:"product_id"`
	PreviousStock int       `json:"previous_stock"`
	NewStock      int       `json:"new_stock"`
	ChangeAmount  int       `json:"change_amount"`
	Type          string    `json:"type"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
