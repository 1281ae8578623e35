package models

import "time"

// Catalogue groups products under a unique name and URL slug.
type Catalogue struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	Logo        string    `json:"logo" validate:"omitempty,max=500"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	CreatedAt   time.Time `json:"created_at"`
}
