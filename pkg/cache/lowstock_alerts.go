package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const lowStockAlertKeyPrefix = "lowstock"

// LowStockAlertTTL bounds how long an alert key survives without being
// refreshed; the worker re-arms it on every qualifying stock.changed event,
// so a stale key self-heals even if a clear is missed.
const LowStockAlertTTL = 7 * 24 * time.Hour

// LowStockAlerts tracks which products are currently flagged below the
// low-stock threshold. The worker arms an alert when a stock mutation drops a
// product under the threshold and clears it when stock recovers. The dashboard
// low-stock list itself is served from Postgres (the projection is recomputed
// per call); these keys exist for cheap "is this product already alerted"
// checks so the worker does not re-notify on every mutation.
type LowStockAlerts struct {
	client *RedisClient
}

// NewLowStockAlerts creates a LowStockAlerts store backed by the given RedisClient.
func NewLowStockAlerts(r *RedisClient) *LowStockAlerts {
	return &LowStockAlerts{client: r}
}

// Arm records that productID is below the threshold at the given stock level.
// Returns true if the alert was newly armed, false if it was already active.
func (a *LowStockAlerts) Arm(ctx context.Context, productID uuid.UUID, stock int) (bool, error) {
	key := a.key(productID)
	set, err := a.client.Client().SetNX(ctx, key, strconv.Itoa(stock), LowStockAlertTTL).Result()
	if err != nil {
		return false, fmt.Errorf("lowstock arm: %w", err)
	}
	if !set {
		// Refresh the recorded stock level and TTL on an already-active alert.
		if err := a.client.Client().Set(ctx, key, strconv.Itoa(stock), LowStockAlertTTL).Err(); err != nil {
			return false, fmt.Errorf("lowstock refresh: %w", err)
		}
	}
	return set, nil
}

// Clear removes the alert for productID. Safe to call when no alert is active.
func (a *LowStockAlerts) Clear(ctx context.Context, productID uuid.UUID) error {
	if err := a.client.Client().Del(ctx, a.key(productID)).Err(); err != nil {
		return fmt.Errorf("lowstock clear: %w", err)
	}
	return nil
}

// Active reports whether an alert is currently armed for productID.
func (a *LowStockAlerts) Active(ctx context.Context, productID uuid.UUID) (bool, error) {
	n, err := a.client.Client().Exists(ctx, a.key(productID)).Result()
	if err != nil {
		return false, fmt.Errorf("lowstock check: %w", err)
	}
	return n > 0, nil
}

// key builds the Redis key: "lowstock:{productID}"
func (a *LowStockAlerts) key(productID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", lowStockAlertKeyPrefix, productID)
}
