package services

import (
	"fmt"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// ShippingService handles business logic for shipping records.
type ShippingService struct {
	repo repositories.ShippingRepository
}

// NewShippingService creates a new ShippingService.
func NewShippingService(repo repositories.ShippingRepository) *ShippingService {
	return &ShippingService{
		repo: repo,
	}
}

// ShippingEnvelope wraps a created shipping record.
type ShippingEnvelope struct {
	Shipping *models.Shipping `json:"shipping"`
}

// Create persists a new shipping record linked to one of the user's
// orders. The owning user and order always come from the caller's
// authenticated identity, never from the request body.
func (s *ShippingService) Create(userID, orderID string, shipping *models.Shipping) (*ShippingEnvelope, error) {
	shipping.ID = ""
	shipping.UserID = userID
	shipping.OrderID = orderID
	if err := s.repo.Create(shipping); err != nil {
		return nil, fmt.Errorf("failed to create shipping: %w", err)
	}
	return &ShippingEnvelope{Shipping: shipping}, nil
}

// Get retrieves a shipping record by its ID.
func (s *ShippingService) Get(id string) (*models.Shipping, error) {
	return s.repo.GetByID(id)
}

// Update applies a partial patch to a shipping record.
func (s *ShippingService) Update(id string, patch *models.Shipping) (*models.Shipping, error) {
	return s.repo.Update(id, patch)
}

// Delete removes a shipping record by its ID.
func (s *ShippingService) Delete(id string) error {
	return s.repo.Delete(id)
}
