package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"inventario/internal/models"
)

// GORMClientRepository is a GORM implementation of ClientRepository.
type GORMClientRepository struct {
	db *gorm.DB
}

// NewGORMClientRepository creates a new instance of GORMClientRepository.
func NewGORMClientRepository(db *gorm.DB) *GORMClientRepository {
	return &GORMClientRepository{
		db: db,
	}
}

func (r *GORMClientRepository) GetAll(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).Order("id").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to get all clients: %w", err)
	}
	return clients, nil
}

func (r *GORMClientRepository) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("client with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get client by ID %d: %w", id, err)
	}
	return &client, nil
}

func (r *GORMClientRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Client{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check client %d: %w", id, err)
	}
	return count > 0, nil
}

// ExistsByEmail reports whether a client other than excludeID uses the email.
func (r *GORMClientRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Client{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to look up client by email: %w", err)
	}
	return count > 0, nil
}

func (r *GORMClientRepository) Create(ctx context.Context, client *models.Client) error {
	client.ID = 0
	client.Version = 1
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *GORMClientRepository) Update(ctx context.Context, client *models.Client) error {
	res := r.db.WithContext(ctx).Model(&models.Client{}).
		Where("id = ? AND version = ?", client.ID, client.Version).
		Updates(map[string]interface{}{
			"first_name": client.FirstName,
			"last_name":  client.LastName,
			"email":      client.Email,
			"phone":      client.Phone,
			"version":    client.Version + 1,
		})
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to update client: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("client with ID %d: %w", client.ID, ErrStaleVersion)
	}
	client.Version++
	return nil
}

func (r *GORMClientRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Client{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete client: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("client with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
