package repositories

import (
	"context"

	"inventario/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	Exists(ctx context.Context, id uint) (bool, error)
	// ExistsByIdentity reports whether another category (id != excludeID) has the
	// same name and description. Pass 0 to check against every row.
	ExistsByIdentity(ctx context.Context, name, description string, excludeID uint) (bool, error)
	Create(ctx context.Context, category *models.Category) error
	// Update overwrites every field of the row whose id and version match category.
	// On success category.Version is advanced.
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
}
