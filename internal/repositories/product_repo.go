package repositories

import (
	"context"

	"inventario/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ExistsByIdentity(ctx context.Context, name, description string, categoryID, excludeID uint) (bool, error)
	ExistsByCategory(ctx context.Context, categoryID uint) (bool, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
}
