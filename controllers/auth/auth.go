package auth

import (
	"aircnc-booking/logger"
	"aircnc-booking/services/token"
	"aircnc-booking/types"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	tokens *token.Service
}

func NewAuthController(tokens *token.Service) *AuthController {
	return &AuthController{tokens: tokens}
}

// CreateToken issues a short-lived bearer token for an email claim.
// POST /jwt — the {token} response shape is the frontend contract.
func (ac *AuthController) CreateToken(c *fiber.Ctx) error {
	var req types.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse token request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	signed, err := ac.tokens.Issue(req.Email)
	if err != nil {
		logger.Error("Failed to sign token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to issue token",
		})
	}

	return c.JSON(fiber.Map{"token": signed})
}
