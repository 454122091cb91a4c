package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/product-catalog/services/inventory/domain/models"
)

// DefaultHistoryLimit bounds history queries when the caller passes no limit.
const DefaultHistoryLimit = 50

// StockRepository is the persistence interface for the stock ledger and the
// product stock field. The domain layer owns this interface; infrastructure
// implements it against Postgres.
type StockRepository interface {
	// ApplyChange performs one stock mutation as a single unit of work:
	// lock the product row, apply the policy, persist the new stock and
	// refreshed updated_at, and append exactly one ledger entry. Concurrent
	// mutations of the same product serialize on the row lock, so each
	// entry's PreviousStock matches the prior committed state. Returns
	// domain.ErrProductNotFound when productID does not exist; on any error
	// neither the product nor the ledger is modified.
	ApplyChange(ctx context.Context, productID uuid.UUID, t models.MutationType, quantity int, reason string) (*models.StockChange, error)

	// History returns up to limit ledger entries for the product, newest
	// first (created_at descending, time-ordered id as tiebreak). A limit
	// of zero or less falls back to DefaultHistoryLimit.
	History(ctx context.Context, productID uuid.UUID, limit int) ([]*models.StockChange, error)

	// LowStock scans current stock and returns every product with
	// stock < threshold, category reference resolved for display. The
	// projection reads only the product collection; it never replays the
	// ledger.
	LowStock(ctx context.Context, threshold int) ([]*models.LowStockProduct, error)
}
