package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/ghuser/product-catalog/pkg/errhttp"
	"github.com/ghuser/product-catalog/pkg/httpx"
	appsvcs "github.com/ghuser/product-catalog/services/catalog/application/services"
	"github.com/ghuser/product-catalog/services/catalog/domain/repositories"
)

// ProductPage is the paginated product listing response.
type ProductPage struct {
	Items      []ProductView `json:"items"`
	Total      int           `json:"total"      example:"42"`
	Page       int           `json:"page"       example:"1"`
	PageSize   int           `json:"pageSize"   example:"20"`
	TotalPages int           `json:"totalPages" example:"3"`
} // @name ProductPage

// ListProductsHandler handles GET /products requests.
type ListProductsHandler struct {
	svc *appsvcs.Services
}

// NewListProductsHandler returns a ListProductsHandler backed by the given services.
func NewListProductsHandler(svc *appsvcs.Services) *ListProductsHandler {
	return &ListProductsHandler{svc: svc}
}

// Execute lists products with optional search, category filter, and pagination.
//
//	@Summary		List products
//	@Description	Returns a page of products, newest first, optionally filtered by search text and category
//	@Tags			products
//	@Produce		json
//	@Param			search		query		string	false	"Match against name and description"
//	@Param			category	query		string	false	"Category ID filter"
//	@Param			page		query		int		false	"1-based page number"
//	@Param			pageSize	query		int		false	"Page size, max 100"
//	@Success		200			{object}	ProductPage
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/products [get]
func (h *ListProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	query := repositories.ProductQuery{
		Search: r.URL.Query().Get("search"),
	}

	if raw := r.URL.Query().Get("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "category must be a valid UUID")
			return
		}
		query.CategoryID = id
	}
	if raw := r.URL.Query().Get("page"); raw != "" {
		query.Page, _ = strconv.Atoi(raw)
	}
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		query.PageSize, _ = strconv.Atoi(raw)
	}
	query.Normalize()

	products, total, err := h.svc.Products.List(r.Context(), query)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items := make([]ProductView, len(products))
	for i, p := range products {
		items[i] = toProductView(p)
	}

	totalPages := (total + query.PageSize - 1) / query.PageSize
	httpx.JSONSuccess(w, http.StatusOK, ProductPage{
		Items:      items,
		Total:      total,
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalPages: totalPages,
	})
}
