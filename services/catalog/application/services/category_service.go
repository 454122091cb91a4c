package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	catalogdomain "github.com/ghuser/product-catalog/services/catalog/domain"
	"github.com/ghuser/product-catalog/services/catalog/domain/models"
	"github.com/ghuser/product-catalog/services/catalog/domain/repositories"
)

// CategoryService orchestrates category CRUD.
type CategoryService struct {
	categories repositories.CategoryRepository
}

func NewCategoryService(categories repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) Create(ctx context.Context, name, description string) (*models.Category, error) {
	category, err := models.NewCategory(name, description)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", catalogdomain.ErrInvalidCategory, err)
	}
	if err := s.categories.Save(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, name, description string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", catalogdomain.ErrInvalidCategory)
	}

	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	category.Description = description
	category.UpdatedAt = time.Now().UTC()

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category. Products referencing it are left untouched and
// display as "Unknown" until re-categorized.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.categories.Delete(ctx, id)
}
