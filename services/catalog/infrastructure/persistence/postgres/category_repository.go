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
	"github.com/ghuser/product-catalog/services/catalog/infrastructure/persistence/postgres/db"
)

// CategoryRepository implements repositories.CategoryRepository against PostgreSQL.
type CategoryRepository struct {
	db *database.Database
}

func NewCategoryRepository(database *database.Database) *CategoryRepository {
	return &CategoryRepository{db: database}
}

func (r *CategoryRepository) Save(ctx context.Context, category *models.Category) error {
	q := db.New(r.db.DB())
	if err := q.InsertCategory(ctx, db.InsertCategoryParams{
		ID:          category.ID,
		Name:        category.Name,
		Description: nullString(category.Description),
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	q := db.New(r.db.DB())
	row, err := q.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("query category: %w", err)
	}
	return rowToCategory(row), nil
}

// List returns all categories sorted by name.
func (r *CategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	q := db.New(r.db.DB())
	rows, err := q.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	categories := make([]*models.Category, len(rows))
	for i, row := range rows {
		categories[i] = rowToCategory(row)
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	q := db.New(r.db.DB())
	affected, err := q.UpdateCategory(ctx, db.UpdateCategoryParams{
		ID:          category.ID,
		Name:        category.Name,
		Description: nullString(category.Description),
		UpdatedAt:   category.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if affected == 0 {
		return catalogdomain.ErrCategoryNotFound
	}
	return nil
}

// Delete removes the category. Products referencing it keep their dangling
// reference; reads resolve it to the "Unknown" display name.
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	q := db.New(r.db.DB())
	affected, err := q.DeleteCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if affected == 0 {
		return catalogdomain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	q := db.New(r.db.DB())
	exists, err := q.CategoryExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check category exists: %w", err)
	}
	return exists, nil
}

func rowToCategory(row db.Category) *models.Category {
	return &models.Category{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description.String,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
