package handlers

import (
	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders. Every order route
// requires authentication.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes behind the authentication
// gate.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, authGate fiber.Handler) {
	orderRoutes := router.Group("/order", authGate)
	orderRoutes.Post("/", h.HandleCreate)
	orderRoutes.Get("/:id", h.HandleGet)
}

// OrderItemRequest is a single line item in an order creation body.
type OrderItemRequest struct {
	ProductID string  `json:"id" validate:"required"`
	Price     float64 `json:"price" validate:"required,gt=0"`
	Amount    int     `json:"amount" validate:"required,gt=0"`
}

// CreateOrderRequest is the body for order creation.
type CreateOrderRequest struct {
	Info         []OrderItemRequest `json:"info" validate:"required,min=1,dive"`
	PriceTotally float64            `json:"priceTotally" validate:"required,gt=0"`
}

// HandleCreate creates an order for the authenticated user. The line
// item list is frozen at creation; orders have no update or delete.
func (h *OrderHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	info := make([]models.OrderItem, 0, len(req.Info))
	for _, item := range req.Info {
		info = append(info, models.OrderItem{
			ProductID: item.ProductID,
			Price:     item.Price,
			Amount:    item.Amount,
		})
	}

	user := middleware.TokenUserFromContext(c)
	envelope, err := h.service.Create(user.ID, &models.Order{
		Info:         info,
		PriceTotally: req.PriceTotally,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(envelope)
}

// HandleGet returns an order to its owner only.
func (h *OrderHandler) HandleGet(c *fiber.Ctx) error {
	order, err := h.service.Get(c.Params("id"))
	if err != nil {
		return writeServiceError(c, err)
	}

	user := middleware.TokenUserFromContext(c)
	if order.UserID != user.ID {
		return writeServiceError(c, services.ErrForbidden)
	}
	return c.JSON(order)
}
