package handlers

import (
	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user accounts: registration,
// login and profile CRUD.
type UserHandler struct {
	authService *services.AuthService
	userService *services.UserService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService, userService *services.UserService) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes. Profile mutation requires
// authentication; registration, login and profile lookup are public.
func (h *UserHandler) RegisterRoutes(router fiber.Router, authGate fiber.Handler) {
	userRoutes := router.Group("/user")
	userRoutes.Post("/", h.HandleRegister)
	userRoutes.Post("/login", h.HandleLogin)
	userRoutes.Get("/:name", h.HandleGetByName)
	userRoutes.Put("/:name", authGate, h.HandleUpdate)
	userRoutes.Delete("/:name", authGate, h.HandleDelete)
}

// RegisterRequest is the body for new user registration.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required"`
}

// HandleRegister registers a new user and issues a token.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	result, err := h.authService.Register(req.Name, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}

	c.Set(fiber.HeaderAuthorization, "Bearer "+result.Token)
	return c.Status(fiber.StatusCreated).JSON(result)
}

// LoginRequest is the body for login. Either name or email identifies
// the account.
type LoginRequest struct {
	Name     string `json:"name" validate:"required_without=Email"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates a user and issues a token.
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	result, err := h.authService.Login(req.Name, req.Email, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}

	c.Set(fiber.HeaderAuthorization, "Bearer "+result.Token)
	return c.JSON(result)
}

// HandleGetByName returns a public profile. Email and phone are never
// part of this shape.
func (h *UserHandler) HandleGetByName(c *fiber.Ctx) error {
	user, err := h.userService.GetByName(c.Params("name"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(user.Public())
}

// UpdateUserRequest is the partial patch for a profile update.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"omitempty,min=3,max=100"`
	Password string `json:"password"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
}

// HandleUpdate patches the caller's own profile. Updating anyone else's
// is forbidden.
func (h *UserHandler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return writeBodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}

	user, err := h.userService.GetByName(c.Params("name"))
	if err != nil {
		return writeServiceError(c, err)
	}

	authUser := middleware.TokenUserFromContext(c)
	if authUser == nil || authUser.Name != user.Name {
		return writeServiceError(c, services.ErrForbidden)
	}

	patch := &models.User{
		Name:     req.Name,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	updated, err := h.userService.Update(user.ID, patch)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(updated)
}

// HandleDelete removes the caller's own account.
func (h *UserHandler) HandleDelete(c *fiber.Ctx) error {
	name := c.Params("name")

	user, err := h.userService.GetByName(name)
	if err != nil {
		return writeServiceError(c, err)
	}

	authUser := middleware.TokenUserFromContext(c)
	if authUser == nil || authUser.Name != name {
		return writeServiceError(c, services.ErrForbidden)
	}

	if err := h.userService.Delete(user.ID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
