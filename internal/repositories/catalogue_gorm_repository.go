package repositories

import (
	"errors"
	"fmt"

	"pasar/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCatalogueRepository is a GORM implementation of CatalogueRepository.
type GORMCatalogueRepository struct {
	db *gorm.DB
}

// NewGORMCatalogueRepository creates a new instance of GORMCatalogueRepository.
func NewGORMCatalogueRepository(db *gorm.DB) *GORMCatalogueRepository {
	return &GORMCatalogueRepository{
		db: db,
	}
}

// Create creates a new catalogue in the database.
func (r *GORMCatalogueRepository) Create(catalogue *models.Catalogue) error {
	if catalogue.ID == "" {
		catalogue.ID = uuid.New().String()
	}
	if err := r.db.Create(catalogue).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create catalogue: %w", err)
	}
	return nil
}

// GetByID retrieves a catalogue by its ID from the database.
func (r *GORMCatalogueRepository) GetByID(id string) (*models.Catalogue, error) {
	var catalogue models.Catalogue
	if err := r.db.First(&catalogue, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get catalogue by ID %s: %w", id, err)
	}
	return &catalogue, nil
}

// FindByNameOrSlug returns every catalogue matching either the name or
// the slug. Used by the uniqueness pre-check on creation.
func (r *GORMCatalogueRepository) FindByNameOrSlug(name, slug string) ([]models.Catalogue, error) {
	var catalogues []models.Catalogue
	if err := r.db.Where("name = ? OR slug = ?", name, slug).Find(&catalogues).Error; err != nil {
		return nil, fmt.Errorf("failed to search catalogues by name/slug: %w", err)
	}
	return catalogues, nil
}

// Update applies a partial patch to a catalogue and returns the
// refreshed record.
func (r *GORMCatalogueRepository) Update(id string, patch *models.Catalogue) (*models.Catalogue, error) {
	res := r.db.Model(&models.Catalogue{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to update catalogue %s: %w", id, res.Error)
	}
	return r.GetByID(id)
}

// Delete deletes a catalogue by its ID from the database.
func (r *GORMCatalogueRepository) Delete(id string) error {
	res := r.db.Delete(&models.Catalogue{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete catalogue %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
