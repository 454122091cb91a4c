package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/product-catalog/pkg/errhttp"
	"github.com/ghuser/product-catalog/pkg/httpx"
	pkgvalidator "github.com/ghuser/product-catalog/pkg/validator"
	appsvcs "github.com/ghuser/product-catalog/services/catalog/application/services"
)

// CreateProductRequest is the request body for POST /products.
type CreateProductRequest struct {
	Name        string  `json:"name"        validate:"required"       example:"Mechanical Keyboard"`
	Description string  `json:"description" validate:"required"       example:"Tenkeyless, hot-swappable switches"`
	Price       float64 `json:"price"       validate:"gte=0"          example:"129.99"`
	Stock       int     `json:"stock"       validate:"gte=0"          example:"25"`
	CategoryID  string  `json:"categoryId"  validate:"omitempty,uuid"`
	ImageURL    string  `json:"imageUrl,omitempty"`
} // @name CreateProductRequest

// CreateProductHandler handles POST /products requests.
type CreateProductHandler struct {
	svc *appsvcs.Services
}

// NewCreateProductHandler returns a CreateProductHandler backed by the given services.
func NewCreateProductHandler(svc *appsvcs.Services) *CreateProductHandler {
	return &CreateProductHandler{svc: svc}
}

// Execute creates a new product.
//
//	@Summary		Create product
//	@Description	Creates a product with an optional category reference
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProductRequest	true	"Product to create"
//	@Success		201		{object}	ProductView
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/products [post]
func (h *CreateProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateProductRequest](w, r)
	if !ok {
		return
	}

	var categoryID uuid.UUID
	if req.CategoryID != "" {
		id, err := uuid.Parse(req.CategoryID)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "categoryId must be a valid UUID")
			return
		}
		categoryID = id
	}

	product, err := h.svc.Products.Create(r.Context(), appsvcs.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  categoryID,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSONSuccess(w, http.StatusCreated, toProductView(product))
}
