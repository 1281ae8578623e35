package repositories

import (
	"errors"
	"fmt"

	"pasar/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMShippingRepository is a GORM implementation of ShippingRepository.
type GORMShippingRepository struct {
	db *gorm.DB
}

// NewGORMShippingRepository creates a new instance of GORMShippingRepository.
func NewGORMShippingRepository(db *gorm.DB) *GORMShippingRepository {
	return &GORMShippingRepository{
		db: db,
	}
}

// Create creates a new shipping record in the database.
func (r *GORMShippingRepository) Create(shipping *models.Shipping) error {
	if shipping.ID == "" {
		shipping.ID = uuid.New().String()
	}
	if err := r.db.Create(shipping).Error; err != nil {
		return fmt.Errorf("failed to create shipping: %w", err)
	}
	return nil
}

// GetByID retrieves a shipping record by its ID from the database.
func (r *GORMShippingRepository) GetByID(id string) (*models.Shipping, error) {
	var shipping models.Shipping
	if err := r.db.First(&shipping, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get shipping by ID %s: %w", id, err)
	}
	return &shipping, nil
}

// Update applies a partial patch to a shipping record and returns the
// refreshed record.
func (r *GORMShippingRepository) Update(id string, patch *models.Shipping) (*models.Shipping, error) {
	res := r.db.Model(&models.Shipping{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update shipping %s: %w", id, res.Error)
	}
	return r.GetByID(id)
}

// Delete deletes a shipping record by its ID from the database.
func (r *GORMShippingRepository) Delete(id string) error {
	res := r.db.Delete(&models.Shipping{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete shipping %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
