package services

import (
	"github.com/ghuser/product-catalog/pkg/app"
	"github.com/ghuser/product-catalog/pkg/cache"
	"github.com/ghuser/product-catalog/services/inventory/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Inventory *InventoryService
}

// New wires all inventory application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewStockRepository(a.Db, a.EventBus)
	productCache := cache.NewProductCache(a.Redis)
	return &Services{
		Inventory: NewInventoryService(repo, productCache, a.Cfg.LowStockThreshold, a.Cfg.StockHistoryLimit),
	}
}
