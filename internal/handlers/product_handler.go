package handlers

import (
	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products and reviews.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes. Creation requires the
// seller role, mutation requires admin, reviews any authenticated user.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, authGate, sellerGate, adminGate fiber.Handler) {
	productRoutes := router.Group("/product")
	productRoutes.Post("/", sellerGate, h.HandleCreate)
	productRoutes.Get("/:id", h.HandleGet)
	productRoutes.Put("/:id", adminGate, h.HandleUpdate)
	productRoutes.Delete("/:id", adminGate, h.HandleDelete)
	productRoutes.Post("/:id/review", authGate, h.HandleWriteReview)
}

// CreateProductRequest is the body for product creation.
type CreateProductRequest struct {
	Name          string   `json:"name" validate:"required"`
	Photos        []string `json:"photos" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Slug          string   `json:"slug" validate:"required"`
	Status        string   `json:"status" validate:"required,oneof=available runningOut unavailable"`
	StockQuantity int      `json:"stockQuantity" validate:"gte=0"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	CatalogueID   string   `json:"catalogueId" validate:"required"`
}

// HandleCreate creates a new product owned by the authenticated seller.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	user := middleware.TokenUserFromContext(c)
	envelope, err := h.service.Create(user.ID, &models.Product{
		Name:          req.Name,
		Photos:        req.Photos,
		Description:   req.Description,
		Slug:          req.Slug,
		Status:        req.Status,
		StockQuantity: req.StockQuantity,
		Price:         req.Price,
		CatalogueID:   req.CatalogueID,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(envelope)
}

// HandleGet returns a product by its ID.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	product, err := h.service.Get(c.Params("id"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(product)
}

// UpdateProductRequest is the partial patch for a product update.
type UpdateProductRequest struct {
	Name          string   `json:"name"`
	Photos        []string `json:"photos"`
	Description   string   `json:"description"`
	Slug          string   `json:"slug"`
	Rate          float64  `json:"rate"`
	Status        string   `json:"status" validate:"omitempty,oneof=available runningOut unavailable"`
	StockQuantity int      `json:"stockQuantity" validate:"omitempty,gte=0"`
	Price         float64  `json:"price" validate:"omitempty,gt=0"`
}

// HandleUpdate patches an existing product.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	product, err := h.service.Get(c.Params("id"))
	if err != nil {
		return writeServiceError(c, err)
	}

	updated, err := h.service.Update(product.ID, &models.Product{
		Name:          req.Name,
		Photos:        req.Photos,
		Description:   req.Description,
		Slug:          req.Slug,
		Rate:          req.Rate,
		Status:        req.Status,
		StockQuantity: req.StockQuantity,
		Price:         req.Price,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(updated)
}

// HandleDelete removes a product together with its reviews.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	product, err := h.service.Get(c.Params("id"))
	if err != nil {
		return writeServiceError(c, err)
	}

	if err := h.service.Delete(product.ID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// AddReviewRequest is the body for writing a product review.
type AddReviewRequest struct {
	Content string `json:"content" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Rate    int    `json:"rate" validate:"required,min=1,max=5"`
}

// HandleWriteReview adds the authenticated user's review of a product.
func (h *ProductHandler) HandleWriteReview(c *fiber.Ctx) error {
	var req AddReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	product, err := h.service.Get(c.Params("id"))
	if err != nil {
		return writeServiceError(c, err)
	}

	user := middleware.TokenUserFromContext(c)
	envelope, err := h.service.WriteReview(product.ID, user.ID, &models.Review{
		Content: req.Content,
		Title:   req.Title,
		Rate:    req.Rate,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(envelope)
}
