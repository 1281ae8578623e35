package services

import (
	"fmt"
	"log"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/pkg/rabbitmq"
)

// OrderService handles business logic for orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client
}

// NewOrderService creates a new OrderService. The RabbitMQ client may
// be nil, in which case event publishing is skipped.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// OrderEnvelope wraps a created order.
type OrderEnvelope struct {
	Order *models.Order `json:"order"`
}

// Create persists a new order for the given user and publishes an
// order.created event. The event is best-effort: a publish failure is
// logged and never fails the request.
func (s *OrderService) Create(userID string, order *models.Order) (*OrderEnvelope, error) {
	order.UserID = userID
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"orderID": order.ID,
			"userID":  order.UserID,
			"total":   order.PriceTotally,
		}
		if err := s.mqClient.PublishOrderCreated(event); err != nil {
			log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
		}
	}

	return &OrderEnvelope{Order: order}, nil
}

// Get retrieves an order by its ID. Ownership is the caller's check:
// the handler compares the order's user against the authenticated
// identity before returning it.
func (s *OrderService) Get(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}
