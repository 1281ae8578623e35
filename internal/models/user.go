package models

import "time"

// Roles a user can hold. Role-gated routes treat RoleAdmin as passing
// every check.
const (
	RoleUser   = "user"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User represents an account in the store.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email     string    `json:"email,omitempty" gorm:"type:varchar(255)" validate:"omitempty,email"`
	Phone     string    `json:"phone,omitempty" gorm:"type:varchar(32)"`
	Password  string    `json:"-" gorm:"type:varchar(255)"` // Never serialized
	Role      string    `json:"role" gorm:"type:varchar(16);default:user" validate:"omitempty,oneof=user seller admin"`
	CreatedAt time.Time `json:"created_at"`
}

// PublicUser is the shape returned by public profile lookups. Email and
// phone stay private.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Public strips the private fields from a user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
