package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/product-catalog/services/catalog/domain/models"
)

// Pagination bounds for product listing.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ProductQuery holds filter and pagination parameters for product listing.
type ProductQuery struct {
	Search     string    // case-insensitive match against name and description
	CategoryID uuid.UUID // uuid.Nil means no category filter
	Page       int       // 1-based
	PageSize   int
}

// Normalize clamps pagination to sane bounds.
func (q *ProductQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
}

// ProductRepository is the persistence interface for the Product aggregate.
// The domain layer owns this interface; infrastructure implements it.
// Implementations resolve the weak category reference on every read so
// returned products carry a fully-resolved CategoryRef.
type ProductRepository interface {
	Save(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)

	// Find retrieves a filtered, paginated product list sorted newest first.
	// Returns the products and the total count ignoring pagination.
	Find(ctx context.Context, q ProductQuery) ([]*models.Product, int, error)

	// Update persists changes to an existing Product. The stock field is
	// deliberately excluded: stock changes go through the inventory engine.
	Update(ctx context.Context, product *models.Product) error

	// Delete removes a product. Ledger entries referencing it are kept.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository is the persistence interface for categories.
type CategoryRepository interface {
	Save(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Exists reports whether a category with the given ID exists. Used to
	// validate incoming product category references.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
