package repositories

import "pasar/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByName(name string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(id string, patch *models.User) (*models.User, error)
	Delete(id string) error
}
