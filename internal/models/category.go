package models

import "time"

// Category groups products. A category cannot be removed while products reference it.
type Category struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:100;not null;uniqueIndex:idx_category_identity,priority:1"`
	Description string    `gorm:"size:500;uniqueIndex:idx_category_identity,priority:2"`
	Version     uint      `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName keeps the table name aligned with the public resource name.
func (Category) TableName() string { return "categorias" }
