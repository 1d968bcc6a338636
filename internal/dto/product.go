package dto

import (
	"github.com/shopspring/decimal"

	"inventario/internal/models"
)

// ProductDTO is the wire shape of a product.
type ProductDTO struct {
	ID          *uint            `json:"id"`
	Name        *string          `json:"name" validate:"required,max=100"`
	Description *string          `json:"description" validate:"required,max=500"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Stock       *int             `json:"stock" validate:"required"`
	CategoryID  *uint            `json:"categoryId" validate:"required"`
}

// NewProductDTO projects a stored product onto its transfer object.
func NewProductDTO(p models.Product) ProductDTO {
	return ProductDTO{
		ID:          ptr(p.ID),
		Name:        ptr(p.Name),
		Description: ptr(p.Description),
		Price:       ptr(p.Price),
		Stock:       ptr(p.Stock),
		CategoryID:  ptr(p.CategoryID),
	}
}
