package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// RequireAuthenticated ensures a principal was loaded by AuthMiddleware.
//
// Deliberately no route-level role gate exists for the admin endpoints: the
// moderation service decides per-operation how a non-owner caller is answered
// (empty listing vs. forbidden), which a blanket middleware would flatten.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		return c.Next()
	}
}
