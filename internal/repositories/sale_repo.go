package repositories

import (
	"context"
	"time"

	"inventario/internal/models"
)

// SaleRepository defines the interface for sale data access.
type SaleRepository interface {
	GetAll(ctx context.Context) ([]models.Sale, error)
	GetByID(ctx context.Context, id uint) (*models.Sale, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ExistsByIdentity(ctx context.Context, productID uint, quantity int, saleDate time.Time, excludeID uint) (bool, error)
	ExistsByProduct(ctx context.Context, productID uint) (bool, error)
	ExistsByClient(ctx context.Context, clientID uint) (bool, error)
	Create(ctx context.Context, sale *models.Sale) error
	Update(ctx context.Context, sale *models.Sale) error
	Delete(ctx context.Context, id uint) error
}
