package models

import "time"

// OrderItem is a single line item within an order.
type OrderItem struct {
	ProductID string  `json:"id"`
	Price     float64 `json:"price"` // Price at the time of order
	Amount    int     `json:"amount"`
}

// Order is an immutable purchase record. There is no update or delete
// path once it has been created.
type Order struct {
	ID           string      `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID       string      `json:"userId" gorm:"type:varchar(36);index"`
	PriceTotally float64     `json:"priceTotally"`
	Info         []OrderItem `json:"info" gorm:"serializer:json"`
	CreatedAt    time.Time   `json:"created_at"`
}
