package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/product-catalog/pkg/database"
	"github.com/ghuser/product-catalog/pkg/events"
	catalogmodels "github.com/ghuser/product-catalog/services/catalog/domain/models"
	inventorydomain "github.com/ghuser/product-catalog/services/inventory/domain"
	domainevents "github.com/ghuser/product-catalog/services/inventory/domain/events"
	"github.com/ghuser/product-catalog/services/inventory/domain/models"
	"github.com/ghuser/product-catalog/services/inventory/domain/repositories"
	"github.com/ghuser/product-catalog/services/inventory/infrastructure/persistence/postgres/db"
)

// StockRepository implements repositories.StockRepository against PostgreSQL.
type StockRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewStockRepository returns a StockRepository backed by the given connection
// pool and event bus. The bus is used to publish StockChangedEvents from
// inside the mutation transaction (outbox pattern); pass nil to disable
// publishing (tests).
func NewStockRepository(database *database.Database, bus *events.EventBus) *StockRepository {
	return &StockRepository{db: database, bus: bus}
}

// ApplyChange mutates a product's stock and appends the ledger entry as one
// transaction. SELECT ... FOR UPDATE serializes concurrent mutations of the
// same product, so PreviousStock always reflects the prior committed state
// and the ledger chain stays consistent.
func (r *StockRepository) ApplyChange(ctx context.Context, productID uuid.UUID, t models.MutationType, quantity int, reason string) (*models.StockChange, error) {
	var change *models.StockChange

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		previousStock, err := q.GetProductStockForUpdate(ctx, productID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return inventorydomain.ErrProductNotFound
			}
			return fmt.Errorf("lock product row: %w", err)
		}

		change = models.NewStockChange(productID, t, int(previousStock), quantity, reason)

		if err := q.UpdateProductStock(ctx, db.UpdateProductStockParams{
			ID:        productID,
			Stock:     int32(change.NewStock),
			UpdatedAt: change.CreatedAt,
		}); err != nil {
			return fmt.Errorf("update product stock: %w", err)
		}

		if err := q.InsertStockChange(ctx, db.InsertStockChangeParams{
			ID:            change.ID,
			ProductID:     change.ProductID,
			PreviousStock: int32(change.PreviousStock),
			NewStock:      int32(change.NewStock),
			ChangeAmount:  int32(change.ChangeAmount),
			Type:          change.Type.String(),
			Reason:        nullString(change.Reason),
			CreatedAt:     change.CreatedAt,
		}); err != nil {
			return fmt.Errorf("append ledger entry: %w", err)
		}

		if r.bus != nil {
			if err := r.publishChanged(tx, change); err != nil {
				return fmt.Errorf("publish stock changed: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return change, nil
}

// History returns up to limit ledger entries for the product, newest first.
func (r *StockRepository) History(ctx context.Context, productID uuid.UUID, limit int) ([]*models.StockChange, error) {
	if limit <= 0 {
		limit = repositories.DefaultHistoryLimit
	}

	q := db.New(r.db.DB())
	rows, err := q.ListStockHistory(ctx, db.ListStockHistoryParams{
		ProductID: productID,
		Limit:     int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("query stock history: %w", err)
	}

	entries := make([]*models.StockChange, len(rows))
	for i, row := range rows {
		entries[i] = rowToStockChange(row)
	}
	return entries, nil
}

// LowStock returns every product with stock strictly below threshold, with
// the category reference resolved via LEFT JOIN.
func (r *StockRepository) LowStock(ctx context.Context, threshold int) ([]*models.LowStockProduct, error) {
	q := db.New(r.db.DB())
	rows, err := q.ListLowStockProducts(ctx, int32(threshold))
	if err != nil {
		return nil, fmt.Errorf("query low stock products: %w", err)
	}

	products := make([]*models.LowStockProduct, len(rows))
	for i, row := range rows {
		products[i] = &models.LowStockProduct{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Price:       row.Price,
			Stock:       int(row.Stock),
			Category:    categoryRef(row.CategoryID, row.CategoryName),
			ImageURL:    row.ImageUrl.String,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		}
	}
	return products, nil
}

func (r *StockRepository) publishChanged(tx *sql.Tx, change *models.StockChange) error {
	event := domainevents.StockChangedEvent{
		EventID:       uuid.New(),
		Version:       1,
		ProductID:     change.ProductID,
		PreviousStock: change.PreviousStock,
		NewStock:      change.NewStock,
		ChangeAmount:  change.ChangeAmount,
		Type:          change.Type.String(),
		Reason:        change.Reason,
		OccurredAt:    change.CreatedAt,
	}
	msg, err := events.NewJSONMessage(event, map[string]string{
		"event_id":      event.EventID.String(),
		"event_version": "1",
	})
	if err != nil {
		return err
	}
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicStockChanged, msg)
}

// categoryRef maps the nullable join columns to the three-state CategoryRef.
func categoryRef(id uuid.NullUUID, name sql.NullString) catalogmodels.CategoryRef {
	switch {
	case !id.Valid:
		return catalogmodels.NoCategory()
	case !name.Valid:
		return catalogmodels.UnresolvedCategory(id.UUID)
	default:
		return catalogmodels.ResolvedCategory(id.UUID, name.String)
	}
}

// rowToStockChange maps a db.StockHistory to a domain models.StockChange.
func rowToStockChange(row db.StockHistory) *models.StockChange {
	return &models.StockChange{
		ID:            row.ID,
		ProductID:     row.ProductID,
		PreviousStock: int(row.PreviousStock),
		NewStock:      int(row.NewStock),
		ChangeAmount:  int(row.ChangeAmount),
		Type:          models.MutationType(row.Type),
		Reason:        row.Reason.String,
		CreatedAt:     row.CreatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
