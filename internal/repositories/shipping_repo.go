package repositories

import "pasar/internal/models"

// ShippingRepository defines the interface for shipping data access.
type ShippingRepository interface {
	Create(shipping *models.Shipping) error
	GetByID(id string) (*models.Shipping, error)
	Update(id string, patch *models.Shipping) (*models.Shipping, error)
	Delete(id string) error
}
