package models

import "time"

// Client is a buyer. Email addresses are unique across clients.
type Client struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	Phone     string `gorm:"size:15"`
	Version   uint   `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Client) TableName() string { return "clientes" }

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{&Category{}, &Product{}, &Client{}, &Sale{}}
}
