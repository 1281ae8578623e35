package repositories

import "pasar/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id string) (*models.Product, error)
	FindByNameOrSlug(name, slug string) ([]models.Product, error)
	ListByCatalogue(catalogueID string, skip, take int) ([]models.Product, error)
	Update(id string, patch *models.Product) (*models.Product, error)
	Delete(id string) error
}

// ReviewRepository defines the interface for product review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	FindByUserAndProduct(userID, productID string) ([]models.Review, error)
	ListByProduct(productID string) ([]models.Review, error)
	DeleteByProduct(productID string) error
}
