package services

import (
	"errors"
	"fmt"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// ProductService handles business logic for products and their reviews.
type ProductService struct {
	productRepo repositories.ProductRepository
	reviewRepo  repositories.ReviewRepository
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository, reviewRepo repositories.ReviewRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
	}
}

// ProductEnvelope wraps a created product.
type ProductEnvelope struct {
	Product *models.Product `json:"product"`
}

// ReviewEnvelope wraps a created review.
type ReviewEnvelope struct {
	Review *models.Review `json:"review"`
}

// Create persists a new product owned by the given seller after
// checking that neither its name nor its slug is taken.
func (s *ProductService) Create(sellerID string, product *models.Product) (*ProductEnvelope, error) {
	existing, err := s.productRepo.FindByNameOrSlug(product.Name, product.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check product uniqueness: %w", err)
	}
	if len(existing) > 0 {
		return nil, ErrAlreadyExists
	}

	product.UserID = sellerID
	if err := s.productRepo.Create(product); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &ProductEnvelope{Product: product}, nil
}

// Get retrieves a product by its ID.
func (s *ProductService) Get(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// Update applies a partial patch to a product.
func (s *ProductService) Update(id string, patch *models.Product) (*models.Product, error) {
	updated, err := s.productRepo.Update(id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a product and its reviews. Reviews go first so a
// failure between the two steps never leaves orphaned reviews.
func (s *ProductService) Delete(id string) error {
	if err := s.reviewRepo.DeleteByProduct(id); err != nil {
		return fmt.Errorf("failed to delete reviews for product %s: %w", id, err)
	}
	return s.productRepo.Delete(id)
}

// WriteReview adds a review for a product on behalf of a user. A user
// can review a given product at most once.
func (s *ProductService) WriteReview(productID, userID string, review *models.Review) (*ReviewEnvelope, error) {
	existing, err := s.reviewRepo.FindByUserAndProduct(userID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing reviews: %w", err)
	}
	if len(existing) > 0 {
		return nil, ErrAlreadyReviewed
	}

	review.UserID = userID
	review.ProductID = productID
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &ReviewEnvelope{Review: review}, nil
}
