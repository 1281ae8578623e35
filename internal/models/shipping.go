package models

import "time"

// Shipping holds the delivery details for one of a user's orders.
type Shipping struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);index"`
	OrderID   string    `json:"orderId" gorm:"type:varchar(36);index"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	ZipCode   string    `json:"zipCode"`
	Country   string    `json:"country"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email" validate:"omitempty,email"`
	Company   string    `json:"company"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Track     string    `json:"track,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
