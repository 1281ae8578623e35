package handlers

import (
	"strconv"

	"pasar/internal/models"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Pagination defaults for catalogue product listings.
const (
	defaultSkip = 0
	defaultTake = 10
)

// CatalogueHandler handles HTTP requests for catalogues.
type CatalogueHandler struct {
	service  *services.CatalogueService
	validate *validator.Validate
}

// NewCatalogueHandler creates a new CatalogueHandler.
func NewCatalogueHandler(service *services.CatalogueService) *CatalogueHandler {
	return &CatalogueHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalogue routes. Reads are public,
// mutation is admin-only.
func (h *CatalogueHandler) RegisterRoutes(router fiber.Router, adminGate fiber.Handler) {
	catalogueRoutes := router.Group("/catalogue")
	catalogueRoutes.Post("/", adminGate, h.HandleCreate)
	catalogueRoutes.Get("/:id", h.HandleGet)
	catalogueRoutes.Get("/:id/products", h.HandleGetProducts)
	catalogueRoutes.Put("/:id", adminGate, h.HandleUpdate)
	catalogueRoutes.Delete("/:id", adminGate, h.HandleDelete)
}

// CreateCatalogueRequest is the body for catalogue creation.
type CreateCatalogueRequest struct {
	Name        string `json:"name" validate:"required"`
	Logo        string `json:"logo" validate:"required"`
	Description string `json:"description" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
}

// HandleCreate creates a new catalogue.
func (h *CatalogueHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateCatalogueRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	envelope, err := h.service.Create(&models.Catalogue{
		Name:        req.Name,
		Logo:        req.Logo,
		Description: req.Description,
		Slug:        req.Slug,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(envelope)
}

// HandleGet returns a catalogue by its ID.
func (h *CatalogueHandler) HandleGet(c *fiber.Ctx) error {
	catalogue, err := h.service.Get(c.Params("id"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(catalogue)
}

// parsePagination reads skip/take query parameters. Absent or
// non-numeric values fall back to the defaults rather than erroring.
func parsePagination(c *fiber.Ctx) (skip, take int) {
	skip, take = defaultSkip, defaultTake
	if v, err := strconv.Atoi(c.Query("skip")); err == nil && v >= 0 {
		skip = v
	}
	if v, err := strconv.Atoi(c.Query("take")); err == nil && v >= 0 {
		take = v
	}
	return skip, take
}

// HandleGetProducts returns a page of the catalogue's products in
// creation order.
func (h *CatalogueHandler) HandleGetProducts(c *fiber.Ctx) error {
	catalogue, err := h.service.Get(c.Params("id"))
	if err != nil {
		return writeServiceError(c, err)
	}

	skip, take := parsePagination(c)
	products, err := h.service.GetProducts(catalogue.ID, skip, take)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(products)
}

// UpdateCatalogueRequest is the partial patch for a catalogue update.
type UpdateCatalogueRequest struct {
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

// HandleUpdate patches an existing catalogue.
func (h *CatalogueHandler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateCatalogueRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	catalogue, err := h.service.Get(c.Params("id"))
	if err != nil {
		return writeServiceError(c, err)
	}

	updated, err := h.service.Update(catalogue.ID, &models.Catalogue{
		Name:        req.Name,
		Logo:        req.Logo,
		Description: req.Description,
		Slug:        req.Slug,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(updated)
}

// HandleDelete removes a catalogue. Its products keep their foreign key
// and are not cascaded.
func (h *CatalogueHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
