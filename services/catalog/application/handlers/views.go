package handlers

import (
	"time"

	"github.com/ghuser/product-catalog/services/catalog/domain/models"
)

// ProductView is the serialized product returned by every product endpoint.
// CategoryName is always present, falling back to "Uncategorized" or "Unknown"
// when the reference is absent or dangling.
type ProductView struct {
	ID           string    `json:"id"            example:"123e4567-e89b-12d3-a456-426614174000"`
	Name         string    `json:"name"          example:"Mechanical Keyboard"`
	Description  string    `json:"description"   example:"Tenkeyless, hot-swappable switches"`
	Price        float64   `json:"price"         example:"129.99"`
	Stock        int       `json:"stock"         example:"25"`
	CategoryID   string    `json:"categoryId,omitempty"`
	CategoryName string    `json:"categoryName"  example:"Peripherals"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
} // @name ProductView

// CategoryView is the serialized category.
type CategoryView struct {
	ID          string    `json:"id"          example:"0e8ffecb-7b3c-4a3f-8a5f-2c9a1f3d4e5b"`
	Name        string    `json:"name"        example:"Peripherals"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
} // @name CategoryView

// ErrorResponse documents the error envelope for swagger.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error"   example:"product not found"`
} // @name CatalogErrorResponse

func toProductView(p *models.Product) ProductView {
	view := ProductView{
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

func toCategoryView(c *models.Category) CategoryView {
	return CategoryView{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
