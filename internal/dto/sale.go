package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"inventario/internal/models"
)

// SaleDTO is the wire shape of a sale.
type SaleDTO struct {
	ID        *uint            `json:"id"`
	ProductID *uint            `json:"productId" validate:"required"`
	Quantity  *int             `json:"quantity" validate:"required"`
	SaleDate  *time.Time       `json:"saleDate" validate:"required"`
	Total     *decimal.Decimal `json:"total" validate:"required"`
	ClientID  *uint            `json:"clientId" validate:"required"`
}

// NewSaleDTO projects a stored sale onto its transfer object.
func NewSaleDTO(s models.Sale) SaleDTO {
	return SaleDTO{
		ID:        ptr(s.ID),
		ProductID: ptr(s.ProductID),
		Quantity:  ptr(s.Quantity),
		SaleDate:  ptr(s.SaleDate),
		Total:     ptr(s.Total),
		ClientID:  ptr(s.ClientID),
	}
}
