package services

import (
	"fmt"

	"pasar/internal/models"
	"pasar/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic for user profiles. Registration
// and login live on AuthService since they issue tokens.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetByName retrieves a user by their unique name.
func (s *UserService) GetByName(name string) (*models.User, error) {
	return s.repo.GetByName(name)
}

// Update applies a partial patch to a user. A new password in the patch
// is hashed before it is stored.
func (s *UserService) Update(id string, patch *models.User) (*models.User, error) {
	if patch.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		patch.Password = string(hashed)
	}
	return s.repo.Update(id, patch)
}

// Delete removes a user by their ID.
func (s *UserService) Delete(id string) error {
	return s.repo.Delete(id)
}
