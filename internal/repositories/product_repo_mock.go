package repositories

import (
	"sync"

	"pasar/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of
// ProductRepository. Insertion order stands in for creation order so
// pagination behaves like the database-backed implementation.
type MockProductRepository struct {
	products map[string]models.Product
	order    []string
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.Name == product.Name || p.Slug == product.Slug {
			return ErrDuplicate
		}
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	r.order = append(r.order, product.ID)
	return nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

// FindByNameOrSlug returns products matching either field.
func (r *MockProductRepository) FindByNameOrSlug(name, slug string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []models.Product
	for _, p := range r.products {
		if p.Name == name || p.Slug == slug {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// ListByCatalogue returns a page of a catalogue's products in creation
// order.
func (r *MockProductRepository) ListByCatalogue(catalogueID string, skip, take int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var all []models.Product
	for _, id := range r.order {
		p, ok := r.products[id]
		if ok && p.CatalogueID == catalogueID {
			all = append(all, p)
		}
	}
	if skip >= len(all) {
		return []models.Product{}, nil
	}
	end := skip + take
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], nil
}

// Update applies the non-zero fields of patch to an existing product.
func (r *MockProductRepository) Update(id string, patch *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Name != "" {
		product.Name = patch.Name
	}
	if patch.Slug != "" {
		product.Slug = patch.Slug
	}
	if patch.Description != "" {
		product.Description = patch.Description
	}
	if patch.Photos != nil {
		product.Photos = patch.Photos
	}
	if patch.Status != "" {
		product.Status = patch.Status
	}
	if patch.StockQuantity != 0 {
		product.StockQuantity = patch.StockQuantity
	}
	if patch.Price != 0 {
		product.Price = patch.Price
	}
	if patch.Rate != 0 {
		product.Rate = patch.Rate
	}
	r.products[id] = product
	return &product, nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
