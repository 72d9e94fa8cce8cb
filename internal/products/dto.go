package product

import "github.com/stockroomhq/stockroom-backend/pkg/db/models"

// ProductDTO is the canonical wire representation of a product.
type ProductDTO struct {
	ID          uint    `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CreateProductResult is the 201 response body for product creation.
type CreateProductResult struct {
	Message string     `json:"message"`
	Product ProductDTO `json:"product"`
}

// NewProductDTO maps the stored model to its wire shape.
func NewProductDTO(m *models.Product) *ProductDTO {
	if m == nil {
		return nil
	}
	return &ProductDTO{
		ID:          m.ID,
		SKU:         m.SKU,
		Name:        m.Name,
		Description: m.Description,
	}
}
