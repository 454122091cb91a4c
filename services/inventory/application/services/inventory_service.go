package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	pkgcache "github.com/ghuser/product-catalog/pkg/cache"
	inventorydomain "github.com/ghuser/product-catalog/services/inventory/domain"
	"github.com/ghuser/product-catalog/services/inventory/domain/models"
	"github.com/ghuser/product-catalog/services/inventory/domain/repositories"
)

var meter = otel.Meter("inventory")

// mutationCounter counts committed stock mutations by type. Instrument
// creation only fails on invalid names, so the error is ignored.
var mutationCounter, _ = meter.Int64Counter(
	"inventory.stock_mutations",
	metric.WithDescription("Committed stock mutations by type"),
)

// InventoryService orchestrates stock mutations and the two read paths over
// the ledger. Event publishing is handled by the repository layer (outbox
// pattern); this layer owns input validation and cache invalidation.
type InventoryService struct {
	repo         repositories.StockRepository
	cache        *pkgcache.ProductCache
	threshold    int
	historyLimit int
}

// NewInventoryService returns an InventoryService wired with the given
// repository and cache. threshold is the low-stock cutoff; historyLimit caps
// history query results.
func NewInventoryService(repo repositories.StockRepository, productCache *pkgcache.ProductCache, threshold, historyLimit int) *InventoryService {
	if historyLimit <= 0 {
		historyLimit = repositories.DefaultHistoryLimit
	}
	return &InventoryService{
		repo:         repo,
		cache:        productCache,
		threshold:    threshold,
		historyLimit: historyLimit,
	}
}

// ApplyStockChange validates and applies one stock mutation.
//
// Validation happens before any write: the mutation type must parse and the
// quantity must lie in [0, models.MaxMutationQuantity] (a negative quantity
// to "add" would bypass subtract's zero clamp, and anything past the cap
// would overflow the 32-bit stock column). Product existence
// is checked inside the repository transaction under the row lock. On success
// exactly one ledger entry exists for this call; on any error none does.
func (s *InventoryService) ApplyStockChange(ctx context.Context, productID uuid.UUID, mutationType string, quantity int, reason string) (*models.StockChangeResult, error) {
	t, err := models.ParseMutationType(mutationType)
	if err != nil {
		return nil, err
	}
	if quantity < 0 || quantity > models.MaxMutationQuantity {
		return nil, fmt.Errorf("%w (got %d)", inventorydomain.ErrInvalidQuantity, quantity)
	}

	change, err := s.repo.ApplyChange(ctx, productID, t, quantity, reason)
	if err != nil {
		return nil, fmt.Errorf("apply stock change: %w", err)
	}
	mutationCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("type", t.String())))

	// The cached product view embeds stock; drop it so the next read sees
	// the committed value. Best effort: a stale entry expires via TTL.
	if s.cache != nil {
		_ = s.cache.Delete(context.WithoutCancel(ctx), productID)
	}

	return &models.StockChangeResult{
		ProductID:     change.ProductID,
		PreviousStock: change.PreviousStock,
		NewStock:      change.NewStock,
		ChangeAmount:  change.ChangeAmount,
	}, nil
}

// GetHistory returns the product's most recent ledger entries, newest first,
// capped at the configured limit.
func (s *InventoryService) GetHistory(ctx context.Context, productID uuid.UUID) ([]*models.StockChange, error) {
	entries, err := s.repo.History(ctx, productID, s.historyLimit)
	if err != nil {
		return nil, fmt.Errorf("get stock history: %w", err)
	}
	return entries, nil
}

// GetLowStockItems recomputes the low-stock projection: every product with
// stock strictly below the threshold, paired with the threshold that flagged
// it.
func (s *InventoryService) GetLowStockItems(ctx context.Context) ([]models.LowStockItem, error) {
	products, err := s.repo.LowStock(ctx, s.threshold)
	if err != nil {
		return nil, fmt.Errorf("get low stock items: %w", err)
	}

	items := make([]models.LowStockItem, len(products))
	for i, p := range products {
		items[i] = models.LowStockItem{Product: *p, Threshold: s.threshold}
	}
	return items, nil
}

// Threshold exposes the configured low-stock cutoff for response payloads.
func (s *InventoryService) Threshold() int {
	return s.threshold
}
