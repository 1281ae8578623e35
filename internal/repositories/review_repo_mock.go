package repositories

import (
	"sync"

	"pasar/internal/models"

	"github.com/google/uuid"
)

// MockReviewRepository is an in-memory implementation of ReviewRepository.
type MockReviewRepository struct {
	reviews map[string]models.Review
	mu      sync.RWMutex
}

// NewMockReviewRepository creates a new instance of MockReviewRepository.
func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{
		reviews: make(map[string]models.Review),
	}
}

// Create adds a new review.
func (r *MockReviewRepository) Create(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	r.reviews[review.ID] = *review
	return nil
}

// FindByUserAndProduct returns the reviews a user wrote for a product.
func (r *MockReviewRepository) FindByUserAndProduct(userID, productID string) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []models.Review
	for _, rev := range r.reviews {
		if rev.UserID == userID && rev.ProductID == productID {
			matches = append(matches, rev)
		}
	}
	return matches, nil
}

// ListByProduct returns all reviews for a product.
func (r *MockReviewRepository) ListByProduct(productID string) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []models.Review
	for _, rev := range r.reviews {
		if rev.ProductID == productID {
			matches = append(matches, rev)
		}
	}
	return matches, nil
}

// DeleteByProduct removes every review attached to a product.
func (r *MockReviewRepository) DeleteByProduct(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, rev := range r.reviews {
		if rev.ProductID == productID {
			delete(r.reviews, id)
		}
	}
	return nil
}
