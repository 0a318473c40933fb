package middleware

import (
	"aircnc-booking/services/token"
	"aircnc-booking/types"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth verifies the bearer credential and attaches the decoded claims
// to the request context. Every failure kind (missing, malformed, invalid)
// maps to 403 with the fixed body the frontend expects.
func RequireAuth(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := tokens.FromAuthHeader(c.Get("Authorization"))
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(types.AuthFailure{
				Error:   true,
				Message: "unauthorized access",
			})
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}

// ClaimsFromCtx returns the identity claim attached by RequireAuth.
func ClaimsFromCtx(c *fiber.Ctx) (*token.Claims, bool) {
	claims, ok := c.Locals("claims").(*token.Claims)
	return claims, ok
}
