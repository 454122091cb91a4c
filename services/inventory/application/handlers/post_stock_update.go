package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/product-catalog/pkg/errhttp"
	"github.com/ghuser/product-catalog/pkg/httpx"
	pkgvalidator "github.com/ghuser/product-catalog/pkg/validator"
	appsvcs "github.com/ghuser/product-catalog/services/inventory/application/services"
)

// UpdateStockRequest is the request body for POST /inventory/update.
// Quantity is a pointer so that an explicit 0 (valid for "set") is
// distinguishable from a missing field.
type UpdateStockRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"   example:"123e4567-e89b-12d3-a456-426614174000"`
	Quantity  *int   `json:"quantity"  validate:"required"        example:"5"`
	Type      string `json:"type"      validate:"required"        example:"add"`
	Reason    string `json:"reason,omitempty"                     example:"weekly restock"`
} // @name UpdateStockRequest

// UpdateStockResponse is the mutation outcome returned on success.
type UpdateStockResponse struct {
	ProductID     string `json:"productId"     example:"123e4567-e89b-12d3-a456-426614174000"`
	PreviousStock int    `json:"previousStock" example:"20"`
	NewStock      int    `json:"newStock"      example:"25"`
	ChangeAmount  int    `json:"changeAmount"  example:"5"`
} // @name UpdateStockResponse

// ErrorResponse documents the error envelope for swagger.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error"   example:"product not found"`
} // @name ErrorResponse

// UpdateStockHandler handles POST /inventory/update requests.
type UpdateStockHandler struct {
	svc *appsvcs.Services
}

// NewUpdateStockHandler returns an UpdateStockHandler backed by the given services.
func NewUpdateStockHandler(svc *appsvcs.Services) *UpdateStockHandler {
	return &UpdateStockHandler{svc: svc}
}

// Execute applies one stock mutation.
//
//	@Summary		Update product stock
//	@Description	Applies an add, subtract, or set mutation to a product's stock and records it in the stock ledger
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateStockRequest	true	"Stock mutation request"
//	@Success		200		{object}	UpdateStockResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/inventory/update [post]
func (h *UpdateStockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[UpdateStockRequest](w, r)
	if !ok {
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "productId must be a valid UUID")
		return
	}

	result, err := h.svc.Inventory.ApplyStockChange(r.Context(), productID, req.Type, *req.Quantity, req.Reason)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, UpdateStockResponse{
		ProductID:     result.ProductID.String(),
		PreviousStock: result.PreviousStock,
		NewStock:      result.NewStock,
		ChangeAmount:  result.ChangeAmount,
	})
}
