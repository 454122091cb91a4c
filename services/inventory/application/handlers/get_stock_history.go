package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/product-catalog/pkg/errhttp"
	"github.com/ghuser/product-catalog/pkg/httpx"
	appsvcs "github.com/ghuser/product-catalog/services/inventory/application/services"
	"github.com/ghuser/product-catalog/services/inventory/domain/models"
)

// StockHistoryEntry is the serialized ledger entry.
type StockHistoryEntry struct {
	ID            string    `json:"id"            example:"9b2f4f3a-6f6e-4d7a-9a1e-2f9d3c1b0a88"`
	ProductID     string    `json:"productId"     example:"123e4567-e89b-12d3-a456-426614174000"`
	PreviousStock int       `json:"previousStock" example:"20"`
	NewStock      int       `json:"newStock"      example:"25"`
	ChangeAmount  int       `json:"changeAmount"  example:"5"`
	Type          string    `json:"type"          example:"add"`
	Reason        string    `json:"reason,omitempty" example:"weekly restock"`
	CreatedAt     time.Time `json:"createdAt"     example:"2024-01-15T10:30:00Z"`
} // @name StockHistoryEntry

// GetStockHistoryHandler handles GET /inventory/history/{productId} requests.
type GetStockHistoryHandler struct {
	svc *appsvcs.Services
}

// NewGetStockHistoryHandler returns a GetStockHistoryHandler backed by the given services.
func NewGetStockHistoryHandler(svc *appsvcs.Services) *GetStockHistoryHandler {
	return &GetStockHistoryHandler{svc: svc}
}

// Execute returns the most recent ledger entries for one product, newest first.
//
//	@Summary		Get stock history
//	@Description	Returns the most recent stock ledger entries for a product, newest first, capped at 50
//	@Tags			inventory
//	@Produce		json
//	@Param			productId	path		string	true	"Product ID"
//	@Success		200			{array}		StockHistoryEntry
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/inventory/history/{productId} [get]
func (h *GetStockHistoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "productId must be a valid UUID")
		return
	}

	entries, err := h.svc.Inventory.GetHistory(r.Context(), productID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]StockHistoryEntry, len(entries))
	for i, e := range entries {
		out[i] = toHistoryEntry(e)
	}
	httpx.JSONSuccess(w, http.StatusOK, out)
}

func toHistoryEntry(e *models.StockChange) StockHistoryEntry {
	return StockHistoryEntry{
		ID:            e.ID.String(),
		ProductID:     e.ProductID.String(),
		PreviousStock: e.PreviousStock,
		NewStock:      e.NewStock,
		ChangeAmount:  e.ChangeAmount,
		Type:          e.Type.String(),
		Reason:        e.Reason,
		CreatedAt:     e.CreatedAt,
	}
}
