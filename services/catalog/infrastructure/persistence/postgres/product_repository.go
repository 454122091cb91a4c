package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/product-catalog/pkg/database"
	catalogdomain "github.com/ghuser/product-catalog/services/catalog/domain"
	"github.com/ghuser/product-catalog/services/catalog/domain/models"
	"github.com/ghuser/product-catalog/services/catalog/domain/repositories"
	"github.com/ghuser/product-catalog/services/catalog/infrastructure/persistence/postgres/db"
)

// ProductRepository implements repositories.ProductRepository against PostgreSQL.
type ProductRepository struct {
	db *database.Database
}

func NewProductRepository(database *database.Database) *ProductRepository {
	return &ProductRepository{db: database}
}

// Save inserts a new product row.
func (r *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	q := db.New(r.db.DB())
	if err := q.InsertProduct(ctx, db.InsertProductParams{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       int32(product.Stock),
		CategoryID:  categoryColumn(product.Category),
		ImageUrl:    nullString(product.ImageURL),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID returns the product with its category reference resolved.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	q := db.New(r.db.DB())
	row, err := q.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return &models.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		Stock:       int(row.Stock),
		Category:    categoryRef(row.CategoryID, row.CategoryName),
		ImageURL:    row.ImageUrl.String,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

// Find returns a filtered page of products, newest first, plus the total count.
func (r *ProductRepository) Find(ctx context.Context, query repositories.ProductQuery) ([]*models.Product, int, error) {
	query.Normalize()

	filter := uuid.NullUUID{UUID: query.CategoryID, Valid: query.CategoryID != uuid.Nil}
	q := db.New(r.db.DB())

	total, err := q.CountProducts(ctx, db.CountProductsParams{
		Search:     query.Search,
		CategoryID: filter,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	rows, err := q.FindProducts(ctx, db.FindProductsParams{
		Search:     query.Search,
		CategoryID: filter,
		Limit:      int32(query.PageSize),
		Offset:     int32((query.Page - 1) * query.PageSize),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query products: %w", err)
	}

	products := make([]*models.Product, len(rows))
	for i, row := range rows {
		products[i] = &models.Product{
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
	return products, int(total), nil
}

// Update persists catalog fields of an existing product. Stock is not touched
// here: stock changes flow through the inventory mutation engine.
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	q := db.New(r.db.DB())
	affected, err := q.UpdateProduct(ctx, db.UpdateProductParams{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		CategoryID:  categoryColumn(product.Category),
		ImageUrl:    nullString(product.ImageURL),
		UpdatedAt:   product.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if affected == 0 {
		return catalogdomain.ErrProductNotFound
	}
	return nil
}

// Delete removes the product row. The stock ledger keeps its entries.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	q := db.New(r.db.DB())
	affected, err := q.DeleteProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if affected == 0 {
		return catalogdomain.ErrProductNotFound
	}
	return nil
}

// categoryColumn maps a CategoryRef back to the nullable category_id column.
func categoryColumn(ref models.CategoryRef) uuid.NullUUID {
	id, set := ref.ID()
	return uuid.NullUUID{UUID: id, Valid: set}
}

// categoryRef maps the nullable join columns to the three-state CategoryRef.
func categoryRef(id uuid.NullUUID, name sql.NullString) models.CategoryRef {
	switch {
	case !id.Valid:
		return models.NoCategory()
	case !name.Valid:
		return models.UnresolvedCategory(id.UUID)
	default:
		return models.ResolvedCategory(id.UUID, name.String)
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
