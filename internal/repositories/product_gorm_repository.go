package repositories

import (
	"errors"
	"fmt"

	"pasar/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// FindByNameOrSlug returns every product matching either the name or
// the slug. Used by the uniqueness pre-check on creation.
func (r *GORMProductRepository) FindByNameOrSlug(name, slug string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("name = ? OR slug = ?", name, slug).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to search products by name/slug: %w", err)
	}
	return products, nil
}

// ListByCatalogue returns a page of a catalogue's products in creation
// order.
func (r *GORMProductRepository) ListByCatalogue(catalogueID string, skip, take int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("catalogue_id = ?", catalogueID).
		Order("created_at").
		Offset(skip).
		Limit(take).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products for catalogue %s: %w", catalogueID, err)
	}
	return products, nil
}

// Update applies a partial patch to a product and returns the refreshed
// record.
func (r *GORMProductRepository) Update(id string, patch *models.Product) (*models.Product, error) {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to update product %s: %w", id, res.Error)
	}
	return r.GetByID(id)
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
