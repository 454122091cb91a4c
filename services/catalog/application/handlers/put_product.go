package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/product-catalog/pkg/errhttp"
	"github.com/ghuser/product-catalog/pkg/httpx"
	pkgvalidator "github.com/ghuser/product-catalog/pkg/validator"
	appsvcs "github.com/ghuser/product-catalog/services/catalog/application/services"
)

// UpdateProductRequest is the request body for PUT /products/{id}. It carries
// no stock field: stock changes go through the inventory endpoints.
type UpdateProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
	CategoryID  string  `json:"categoryId"  validate:"omitempty,uuid"`
	ImageURL    string  `json:"imageUrl,omitempty"`
} // @name UpdateProductRequest

// UpdateProductHandler handles PUT /products/{id} requests.
type UpdateProductHandler struct {
	svc *appsvcs.Services
}

// NewUpdateProductHandler returns an UpdateProductHandler backed by the given services.
func NewUpdateProductHandler(svc *appsvcs.Services) *UpdateProductHandler {
	return &UpdateProductHandler{svc: svc}
}

// Execute replaces the catalog fields of an existing product.
//
//	@Summary		Update product
//	@Description	Replaces the catalog fields of a product; stock is excluded and must be changed via the inventory endpoints
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Product ID"
//	@Param			request	body		UpdateProductRequest	true	"Updated product fields"
//	@Success		200		{object}	ProductView
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/products/{id} [put]
func (h *UpdateProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateProductRequest](w, r)
	if !ok {
		return
	}

	var categoryID uuid.UUID
	if req.CategoryID != "" {
		cid, err := uuid.Parse(req.CategoryID)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "categoryId must be a valid UUID")
			return
		}
		categoryID = cid
	}

	product, err := h.svc.Products.Update(r.Context(), id, appsvcs.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  categoryID,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, toProductView(product))
}
