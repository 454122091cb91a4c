package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/product-catalog/pkg/app"
	"github.com/ghuser/product-catalog/pkg/ratelimit"
	"github.com/ghuser/product-catalog/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/product-catalog/services/inventory/application/services"
)

// InventoryRoutes registers inventory endpoints on the provided chi router.
// The low-stock listing lives under /products for compatibility with the
// dashboard's route map even though the inventory context implements it.
func InventoryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	var store ratelimit.Store = ratelimit.NewMemoryStore()
	if a.Redis != nil {
		store = ratelimit.NewRedisStore(a.Redis)
	}
	limiter := ratelimit.New(store, a.Cfg.RateLimitMax, a.Cfg.RateLimitWindow, "stock-update")

	r.Group(func(r chi.Router) {
		r.Route("/inventory", func(r chi.Router) {
			r.With(limiter.Middleware).Post("/update", handlers.NewUpdateStockHandler(svcs).Execute)
			r.Get("/history/{productId}", handlers.NewGetStockHistoryHandler(svcs).Execute)
		})
		r.Get("/products/low-stock", handlers.NewGetLowStockHandler(svcs).Execute)
	})
}
