package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"inventario/internal/models"
)

// GORMSaleRepository is a GORM implementation of SaleRepository.
type GORMSaleRepository struct {
	db *gorm.DB
}

// NewGORMSaleRepository creates a new instance of GORMSaleRepository.
func NewGORMSaleRepository(db *gorm.DB) *GORMSaleRepository {
	return &GORMSaleRepository{
		db: db,
	}
}

func (r *GORMSaleRepository) GetAll(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	if err := r.db.WithContext(ctx).Order("id").Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("failed to get all sales: %w", err)
	}
	return sales, nil
}

func (r *GORMSaleRepository) GetByID(ctx context.Context, id uint) (*models.Sale, error) {
	var sale models.Sale
	if err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("sale with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get sale by ID %d: %w", id, err)
	}
	return &sale, nil
}

func (r *GORMSaleRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Sale{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check sale %d: %w", id, err)
	}
	return count > 0, nil
}

// ExistsByIdentity reports whether another sale records the same product,
// quantity and sale timestamp.
func (r *GORMSaleRepository) ExistsByIdentity(ctx context.Context, productID uint, quantity int, saleDate time.Time, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Sale{}).
		Where("product_id = ? AND quantity = ? AND sale_date = ? AND id <> ?", productID, quantity, saleDate, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to look up duplicate sale: %w", err)
	}
	return count > 0, nil
}

func (r *GORMSaleRepository) ExistsByProduct(ctx context.Context, productID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Sale{}).Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check sales of product %d: %w", productID, err)
	}
	return count > 0, nil
}

func (r *GORMSaleRepository) ExistsByClient(ctx context.Context, clientID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Sale{}).Where("client_id = ?", clientID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check sales of client %d: %w", clientID, err)
	}
	return count > 0, nil
}

func (r *GORMSaleRepository) Create(ctx context.Context, sale *models.Sale) error {
	sale.ID = 0
	sale.Version = 1
	if err := r.db.WithContext(ctx).Omit("Product", "Client").Create(sale).Error; err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create sale: %w", err)
	}
	return nil
}

func (r *GORMSaleRepository) Update(ctx context.Context, sale *models.Sale) error {
	res := r.db.WithContext(ctx).Model(&models.Sale{}).
		Where("id = ? AND version = ?", sale.ID, sale.Version).
		Updates(map[string]interface{}{
			"product_id": sale.ProductID,
			"quantity":   sale.Quantity,
			"sale_date":  sale.SaleDate,
			"total":      sale.Total,
			"client_id":  sale.ClientID,
			"version":    sale.Version + 1,
		})
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to update sale: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("sale with ID %d: %w", sale.ID, ErrStaleVersion)
	}
	sale.Version++
	return nil
}

func (r *GORMSaleRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Sale{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete sale: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("sale with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
