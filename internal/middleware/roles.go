package middleware

import (
	"go-hms/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// Allowed is the capability predicate: does the principal's role appear in
// the allowed set? Kept pure so authorization is testable without transport.
func Allowed(role string, allowed []string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// RequireRole gates a route on the caller's role. Composed after
// AuthMiddleware, which injects the claims.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}

		if !Allowed(claims.Role, roles) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Access denied: insufficient role",
			})
		}

		return c.Next()
	}
}
