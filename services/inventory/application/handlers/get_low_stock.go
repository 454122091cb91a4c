package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/product-catalog/pkg/errhttp"
	"github.com/ghuser/product-catalog/pkg/httpx"
	appsvcs "github.com/ghuser/product-catalog/services/inventory/application/services"
	"github.com/ghuser/product-catalog/services/inventory/domain/models"
)

// LowStockProductView is the product shape inside a low-stock listing, with
// the category reference resolved to a display name.
type LowStockProductView struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	CategoryID   string    `json:"categoryId,omitempty"`
	CategoryName string    `json:"categoryName"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
} // @name LowStockProductView

// LowStockItemView pairs a qualifying product with the active threshold.
type LowStockItemView struct {
	Product   LowStockProductView `json:"product"`
	Threshold int                 `json:"threshold" example:"10"`
} // @name LowStockItemView

// GetLowStockHandler handles GET /products/low-stock requests.
type GetLowStockHandler struct {
	svc *appsvcs.Services
}

// NewGetLowStockHandler returns a GetLowStockHandler backed by the given services.
func NewGetLowStockHandler(svc *appsvcs.Services) *GetLowStockHandler {
	return &GetLowStockHandler{svc: svc}
}

// Execute lists every product strictly below the low-stock threshold.
//
//	@Summary		List low-stock products
//	@Description	Returns all products whose stock is strictly below the configured threshold, with resolved category names
//	@Tags			inventory
//	@Produce		json
//	@Success		200	{array}		LowStockItemView
//	@Failure		401	{object}	ErrorResponse
//	@Router			/products/low-stock [get]
func (h *GetLowStockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Inventory.GetLowStockItems(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]LowStockItemView, len(items))
	for i, item := range items {
		out[i] = LowStockItemView{
			Product:   toLowStockProductView(item.Product),
			Threshold: item.Threshold,
		}
	}
	httpx.JSONSuccess(w, http.StatusOK, out)
}

func toLowStockProductView(p models.LowStockProduct) LowStockProductView {
	view := LowStockProductView{
		ID:           p.ID.String(),
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Stock:        p.Stock,
		CategoryName: p.Category.DisplayName(),
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if id, ok := p.Category.ID(); ok {
		view.CategoryID = id.String()
	}
	return view
}
