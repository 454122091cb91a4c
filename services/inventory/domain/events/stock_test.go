package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestStockChangedEvent_JSONShape(t *testing.T) {
	evt := StockChangedEvent{
		EventID:       uuid.New(),
		Version:       1,
		ProductID:     uuid.New(),
		PreviousStock: 20,
		NewStock:      15,
		ChangeAmount:  -5,
		Type:          "subtract",
		Reason:        "damaged in transit",
		OccurredAt:    time.Now().UTC(),
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(payload, &m); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	for _, key := range []string{
		"event_id", "version", "product_id", "previous_stock",
		"new_stock", "change_amount", "type", "reason", "occurred_at",
	} {
		if _, ok := m[key]; !ok {
			t.Errorf("expected JSON key %q", key)
		}
	}
}

func TestStockChangedEvent_ReasonOmittedWhenEmpty(t *testing.T) {
	payload, err := json.Marshal(StockChangedEvent{EventID: uuid.New(), Version: 1})
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(payload, &m); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if _, ok := m["reason"]; ok {
		t.Error("expected reason to be omitted when empty")
	}
}
