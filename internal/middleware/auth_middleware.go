package middleware

import (
	"fmt"
	"strings"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/gofiber/fiber/v2"
)

// LocalsUserKey is where the gates store the decoded token identity on
// the request context.
const LocalsUserKey = "user"

// The bearer token travels in a custom Authentication request header,
// not the standard Authorization one. Issuance responses echo the token
// back in an Authorization response header.
const authHeader = "Authentication"

func extractToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(authHeader)
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// Authenticated verifies the bearer token and attaches its identity to
// the request. It trusts the token payload as-is and never touches
// storage, so a role change after issuance is invisible here until the
// user logs in again.
func Authenticated(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := extractToken(c)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"msg": "Provide token",
			})
		}

		user, err := authService.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"msg": "Wrong token",
			})
		}

		c.Locals(LocalsUserKey, user)
		return c.Next()
	}
}

// RequireRole verifies the bearer token like Authenticated, then loads
// the user's live record and checks its current role against the
// required one. Admins pass every role check. Strictly more expensive
// and stricter than Authenticated; the two are not interchangeable.
func RequireRole(authService *services.AuthService, userRepo repositories.UserRepository, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := extractToken(c)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"msg": "Provide token",
			})
		}

		tokenUser, err := authService.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"msg": "Wrong token",
			})
		}

		user, err := userRepo.GetByID(tokenUser.ID)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"msg": "Wrong token",
			})
		}

		if user.Role != role && user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"msg": fmt.Sprintf("Not enough privileges, must be: %q", role),
			})
		}

		c.Locals(LocalsUserKey, tokenUser)
		return c.Next()
	}
}

// TokenUserFromContext returns the identity a gate attached to the
// request, or nil when no gate ran.
func TokenUserFromContext(c *fiber.Ctx) *services.TokenUser {
	user, _ := c.Locals(LocalsUserKey).(*services.TokenUser)
	return user
}
