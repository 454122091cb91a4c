package services

import (
	"github.com/ghuser/product-catalog/pkg/app"
	"github.com/ghuser/product-catalog/pkg/cache"
	"github.com/ghuser/product-catalog/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Products   *ProductService
	Categories *CategoryService
}

// New wires all catalog application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	products := postgres.NewProductRepository(a.Db)
	categories := postgres.NewCategoryRepository(a.Db)
	productCache := cache.NewProductCache(a.Redis)
	return &Services{
		Products:   NewProductService(products, categories, productCache),
		Categories: NewCategoryService(categories),
	}
}
