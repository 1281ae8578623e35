package repositories

import (
	"fmt"

	"pasar/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// Create creates a new review in the database.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// FindByUserAndProduct returns the reviews a user has written for a
// product. Used by the one-review-per-user pre-check.
func (r *GORMReviewRepository) FindByUserAndProduct(userID, productID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to search reviews: %w", err)
	}
	return reviews, nil
}

// ListByProduct returns all reviews for a product.
func (r *GORMReviewRepository) ListByProduct(productID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("product_id = ?", productID).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews for product %s: %w", productID, err)
	}
	return reviews, nil
}

// DeleteByProduct removes every review attached to a product. Called
// before the product itself is deleted.
func (r *GORMReviewRepository) DeleteByProduct(productID string) error {
	if err := r.db.Delete(&models.Review{}, "product_id = ?", productID).Error; err != nil {
		return fmt.Errorf("failed to delete reviews for product %s: %w", productID, err)
	}
	return nil
}
