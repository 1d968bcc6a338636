package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records a quantity of a product sold to a client.
type Sale struct {
	ID        uint            `gorm:"primaryKey"`
	ProductID uint            `gorm:"not null;index;uniqueIndex:idx_sale_identity,priority:1"`
	Product   *Product        `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Quantity  int             `gorm:"not null;uniqueIndex:idx_sale_identity,priority:2"`
	SaleDate  time.Time       `gorm:"not null;uniqueIndex:idx_sale_identity,priority:3"`
	Total     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	ClientID  uint            `gorm:"not null;index"`
	Client    *Client         `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Version   uint            `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Sale) TableName() string { return "ventas" }
