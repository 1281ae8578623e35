package repositories

import "pasar/internal/models"

// CatalogueRepository defines the interface for catalogue data access.
type CatalogueRepository interface {
	Create(catalogue *models.Catalogue) error
	GetByID(id string) (*models.Catalogue, error)
	FindByNameOrSlug(name, slug string) ([]models.Catalogue, error)
	Update(id string, patch *models.Catalogue) (*models.Catalogue, error)
	Delete(id string) error
}
