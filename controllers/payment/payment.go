package payment

import (
	"errors"

	paymentService "aircnc-booking/httpServices/payment"
	"aircnc-booking/logger"
	"aircnc-booking/types"

	"github.com/gofiber/fiber/v2"
)

type PaymentController struct {
	gateway *paymentService.Client
}

func NewPaymentController(gateway *paymentService.Client) *PaymentController {
	return &PaymentController{gateway: gateway}
}

// CreateIntent authorizes a charge and hands the client secret back so the
// client side can complete it.
// POST /create-payment-intent — the {clientSecret} response shape is the
// frontend contract.
func (pc *PaymentController) CreateIntent(c *fiber.Ctx) error {
	var req types.PaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse payment intent request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	intent, err := pc.gateway.CreateIntent(c.UserContext(), req.Price, "usd", "")
	if err != nil {
		switch {
		case errors.Is(err, paymentService.ErrInvalidAmount):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Price must be a positive amount",
			})
		case errors.Is(err, paymentService.ErrUnavailable):
			logger.Error("Payment processor unavailable", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(types.ApiResponse{
				Status:  fiber.StatusServiceUnavailable,
				Message: "Payment processor unavailable, retry later",
			})
		default:
			logger.Error("Payment intent creation failed", err)
			return c.Status(fiber.StatusPaymentRequired).JSON(types.ApiResponse{
				Status:  fiber.StatusPaymentRequired,
				Message: err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{"clientSecret": intent.ClientSecret})
}
