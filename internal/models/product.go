package models

import "time"

// Product availability states.
const (
	StatusAvailable   = "available"
	StatusRunningOut  = "runningOut"
	StatusUnavailable = "unavailable"
)

// Product represents a sellable item. Name and Slug are globally unique.
type Product struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string    `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	Slug          string    `json:"slug" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	Description   string    `json:"description" validate:"omitempty,max=500"`
	Photos        []string  `json:"photos" gorm:"serializer:json"`
	Status        string    `json:"status" gorm:"type:varchar(16)" validate:"required,oneof=available runningOut unavailable"`
	StockQuantity int       `json:"stockQuantity" validate:"gte=0"`
	Price         float64   `json:"price" validate:"required,gt=0"`
	Rate          float64   `json:"rate"`
	CatalogueID   string    `json:"catalogueId" gorm:"type:varchar(36);index"`
	UserID        string    `json:"userId" gorm:"type:varchar(36);index"` // Creating seller
	CreatedAt     time.Time `json:"created_at"`
}

// Review is a user's rating of a product. One review per (user, product).
type Review struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Content   string `json:"content" validate:"required"`
	Title     string `json:"title" validate:"required,max=100"`
	Rate      int    `json:"rate" validate:"required,min=1,max=5"`
	UserID    string `json:"userId" gorm:"type:varchar(36);index"`
	ProductID string `json:"productId" gorm:"type:varchar(36);index"`
}
