package handlers

import (
	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ShippingHandler handles HTTP requests for shipping records.
//
// Gating is deliberately uneven: create and read go through the
// authentication gate with an ownership check, while update and delete
// are admin role-gated instead. That mirrors the system this replaces;
// see DESIGN.md before "fixing" it.
type ShippingHandler struct {
	service  *services.ShippingService
	validate *validator.Validate
}

// NewShippingHandler creates a new ShippingHandler.
func NewShippingHandler(service *services.ShippingService) *ShippingHandler {
	return &ShippingHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the shipping routes.
func (h *ShippingHandler) RegisterRoutes(router fiber.Router, authGate, adminGate fiber.Handler) {
	shippingRoutes := router.Group("/shipping")
	shippingRoutes.Post("/", authGate, h.HandleCreate)
	shippingRoutes.Get("/:id", authGate, h.HandleGet)
	shippingRoutes.Put("/:id", adminGate, h.HandleUpdate)
	shippingRoutes.Delete("/:id", adminGate, h.HandleDelete)
}

// CreateShippingRequest is the body for shipping creation. The owning
// user comes from the token, never from the body.
type CreateShippingRequest struct {
	OrderID   string `json:"orderId" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	ZipCode   string `json:"zipCode" validate:"required"`
	Country   string `json:"country" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Company   string `json:"company" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// HandleCreate creates a shipping record for the authenticated user.
func (h *ShippingHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateShippingRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	user := middleware.TokenUserFromContext(c)
	envelope, err := h.service.Create(user.ID, req.OrderID, &models.Shipping{
		Address:   req.Address,
		City:      req.City,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		Phone:     req.Phone,
		Email:     req.Email,
		Company:   req.Company,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(envelope)
}

// HandleGet returns a shipping record to its owner only.
func (h *ShippingHandler) HandleGet(c *fiber.Ctx) error {
	shipping, err := h.service.Get(c.Params("id"))
	if err != nil {
		return writeServiceError(c, err)
	}

	user := middleware.TokenUserFromContext(c)
	if shipping.UserID != user.ID {
		return writeServiceError(c, services.ErrForbidden)
	}
	return c.JSON(shipping)
}

// UpdateShippingRequest is the partial patch for a shipping update.
type UpdateShippingRequest struct {
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
	Company   string `json:"company"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Track     string `json:"track"`
}

// HandleUpdate patches a shipping record. Admin role-gated, and on top
// of that the record must belong to the caller.
func (h *ShippingHandler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateShippingRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	shipping, err := h.service.Get(c.Params("id"))
	if err != nil {
		return writeServiceError(c, err)
	}

	user := middleware.TokenUserFromContext(c)
	if shipping.UserID != user.ID {
		return writeServiceError(c, services.ErrForbidden)
	}

	updated, err := h.service.Update(shipping.ID, &models.Shipping{
		Address:   req.Address,
		City:      req.City,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		Phone:     req.Phone,
		Email:     req.Email,
		Company:   req.Company,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Track:     req.Track,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(updated)
}

// HandleDelete removes a shipping record. Admin role-gated with no
// ownership check, unlike every other shipping route.
func (h *ShippingHandler) HandleDelete(c *fiber.Ctx) error {
	shipping, err := h.service.Get(c.Params("id"))
	if err != nil {
		return writeServiceError(c, err)
	}

	if err := h.service.Delete(shipping.ID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
