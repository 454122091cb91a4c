package models

import (
	"time"

	"github.com/google/uuid"

	catalogmodels "github.com/ghuser/product-catalog/services/catalog/domain/models"
)

// LowStockProduct is the projection row for a product whose stock sits
// strictly below the configured threshold, enriched with the resolved
// category display name for the dashboard.
type LowStockProduct struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    catalogmodels.CategoryRef
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStockItem pairs a qualifying product with the threshold that flagged it,
// mirroring the shape the dashboard consumes.
type LowStockItem struct {
	Product   LowStockProduct
	Threshold int
}
