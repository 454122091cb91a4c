package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/product-catalog/pkg/app"
	"github.com/ghuser/product-catalog/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/product-catalog/services/catalog/application/services"
)

// CatalogRoutes registers product and category endpoints on the provided chi
// router. The /products/low-stock listing is owned by the inventory context
// and registered there; chi matches the static segment before {id}.
func CatalogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	r.Route("/products", func(r chi.Router) {
		r.Post("/", handlers.NewCreateProductHandler(svcs).Execute)
		r.Get("/", handlers.NewListProductsHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetProductHandler(svcs).Execute)
		r.Put("/{id}", handlers.NewUpdateProductHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteProductHandler(svcs).Execute)
	})

	categories := handlers.NewCategoryHandlers(svcs)
	r.Route("/categories", func(r chi.Router) {
		r.Post("/", categories.Create)
		r.Get("/", categories.List)
		r.Get("/{id}", categories.Get)
		r.Put("/{id}", categories.Update)
		r.Delete("/{id}", categories.Delete)
	})
}
