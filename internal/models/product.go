package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents an item in the inventory.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:100;not null;uniqueIndex:idx_product_identity,priority:1"`
	Description string          `gorm:"size:500;uniqueIndex:idx_product_identity,priority:2"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	CategoryID  uint            `gorm:"not null;index;uniqueIndex:idx_product_identity,priority:3"`
	Category    *Category       `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Version     uint            `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Product) TableName() string { return "productos" }
