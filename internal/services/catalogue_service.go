package services

import (
	"errors"
	"fmt"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// CatalogueService handles business logic for catalogues.
type CatalogueService struct {
	catalogueRepo repositories.CatalogueRepository
	productRepo   repositories.ProductRepository
}

// NewCatalogueService creates a new CatalogueService.
func NewCatalogueService(catalogueRepo repositories.CatalogueRepository, productRepo repositories.ProductRepository) *CatalogueService {
	return &CatalogueService{
		catalogueRepo: catalogueRepo,
		productRepo:   productRepo,
	}
}

// CatalogueEnvelope wraps a created catalogue.
type CatalogueEnvelope struct {
	Catalogue *models.Catalogue `json:"catalogue"`
}

// Create persists a new catalogue after checking that neither its name
// nor its slug is taken.
func (s *CatalogueService) Create(catalogue *models.Catalogue) (*CatalogueEnvelope, error) {
	existing, err := s.catalogueRepo.FindByNameOrSlug(catalogue.Name, catalogue.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check catalogue uniqueness: %w", err)
	}
	if len(existing) > 0 {
		return nil, ErrAlreadyExists
	}

	if err := s.catalogueRepo.Create(catalogue); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create catalogue: %w", err)
	}
	return &CatalogueEnvelope{Catalogue: catalogue}, nil
}

// Get retrieves a catalogue by its ID.
func (s *CatalogueService) Get(id string) (*models.Catalogue, error) {
	return s.catalogueRepo.GetByID(id)
}

// Update applies a partial patch to a catalogue.
func (s *CatalogueService) Update(id string, patch *models.Catalogue) (*models.Catalogue, error) {
	updated, err := s.catalogueRepo.Update(id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a catalogue by its ID. Products keep their catalogue
// foreign key; there is no cascade here, unlike product deletion.
func (s *CatalogueService) Delete(id string) error {
	return s.catalogueRepo.Delete(id)
}

// GetProducts returns a page of the catalogue's products in creation
// order.
func (s *CatalogueService) GetProducts(catalogueID string, skip, take int) ([]models.Product, error) {
	return s.productRepo.ListByCatalogue(catalogueID, skip, take)
}
