package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	pkgcache "github.com/ghuser/product-catalog/pkg/cache"
	catalogdomain "github.com/ghuser/product-catalog/services/catalog/domain"
	"github.com/ghuser/product-catalog/services/catalog/domain/models"
	"github.com/ghuser/product-catalog/services/catalog/domain/repositories"
)

// CreateProductInput carries the fields of a product creation request.
// CategoryID is optional; uuid.Nil means no category.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	CategoryID  uuid.UUID
	ImageURL    string
}

// UpdateProductInput carries the mutable catalog fields of a product. Stock is
// absent on purpose: stock changes go through the inventory mutation engine.
type UpdateProductInput struct {
	Name        string
	Description string
	Price       float64
	CategoryID  uuid.UUID
	ImageURL    string
}

// ProductService orchestrates product CRUD with a Redis read-through cache on
// single-product lookups.
type ProductService struct {
	products   repositories.ProductRepository
	categories repositories.CategoryRepository
	cache      *pkgcache.ProductCache
}

func NewProductService(products repositories.ProductRepository, categories repositories.CategoryRepository, productCache *pkgcache.ProductCache) *ProductService {
	return &ProductService{products: products, categories: categories, cache: productCache}
}

// Create validates and persists a new product. A non-nil category reference
// must point at an existing category.
func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	ref, err := s.resolveCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	product, err := models.NewProduct(in.Name, in.Description, in.Price, in.Stock, ref, in.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", catalogdomain.ErrInvalidProduct, err)
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// GetByID returns one product, served from cache when possible.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	// A cache miss and cache trouble both fall through to the database;
	// neither is fatal for a read.
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return cachedToProduct(cached), nil
		}
	}

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Set(context.WithoutCancel(ctx), productToCached(product))
	}
	return product, nil
}

// List returns a filtered page of products plus the total matching count.
func (s *ProductService) List(ctx context.Context, query repositories.ProductQuery) ([]*models.Product, int, error) {
	return s.products.Find(ctx, query)
}

// Update replaces the catalog fields of an existing product and invalidates
// its cache entry.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, in UpdateProductInput) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ref, err := s.resolveCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Category = ref
	product.ImageURL = in.ImageURL
	product.UpdatedAt = time.Now().UTC()

	if err := product.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", catalogdomain.ErrInvalidProduct, err)
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.WithoutCancel(ctx), id)
	}
	return product, nil
}

// Delete removes a product and its cache entry. Stock ledger entries for the
// product are retained.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.WithoutCancel(ctx), id)
	}
	return nil
}

// resolveCategory validates an incoming category id against the category
// store. uuid.Nil means the product carries no category.
func (s *ProductService) resolveCategory(ctx context.Context, id uuid.UUID) (models.CategoryRef, error) {
	if id == uuid.Nil {
		return models.NoCategory(), nil
	}
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return models.CategoryRef{}, err
	}
	return models.ResolvedCategory(category.ID, category.Name), nil
}

func productToCached(p *models.Product) *pkgcache.CachedProduct {
	var categoryID string
	if id, set := p.Category.ID(); set {
		categoryID = id.String()
	}
	return &pkgcache.CachedProduct{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Stock:        p.Stock,
		CategoryID:   categoryID,
		CategoryName: p.Category.DisplayName(),
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func cachedToProduct(c *pkgcache.CachedProduct) *models.Product {
	ref := models.NoCategory()
	if c.CategoryID != "" {
		if id, err := uuid.Parse(c.CategoryID); err == nil {
			if c.CategoryName == models.DisplayUnknown {
				ref = models.UnresolvedCategory(id)
			} else {
				ref = models.ResolvedCategory(id, c.CategoryName)
			}
		}
	}
	return &models.Product{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		Stock:       c.Stock,
		Category:    ref,
		ImageURL:    c.ImageURL,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
