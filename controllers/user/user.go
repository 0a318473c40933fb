package user

import (
	"errors"

	"aircnc-booking/logger"
	"aircnc-booking/middleware"
	userModel "aircnc-booking/models/user"
	"aircnc-booking/repository"
	"aircnc-booking/types"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	users *repository.UserStore
}

func NewUserController(users *repository.UserStore) *UserController {
	return &UserController{users: users}
}

// Show returns the identity record for an email.
// GET /user/:email
func (uc *UserController) Show(c *fiber.Ctx) error {
	email := c.Params("email")

	u, err := uc.users.ByEmail(c.UserContext(), email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "User not found",
			})
		}
		logger.Error("Error fetching user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching user",
		})
	}

	return c.JSON(u)
}

// Upsert creates or refreshes the caller's own profile record.
// PUT /users/:email
func (uc *UserController) Upsert(c *fiber.Ctx) error {
	email := c.Params("email")

	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok || claims.Email != email {
		return c.Status(fiber.StatusForbidden).JSON(types.AuthFailure{
			Error:   true,
			Message: "unauthorized access",
		})
	}

	var req types.UserUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse user payload", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	u := userModel.User{
		Email:  email,
		Name:   req.Name,
		Avatar: req.Avatar,
		Role:   req.Role,
	}
	if u.Role == "" {
		u.Role = "guest"
	}

	if err := uc.users.Upsert(c.UserContext(), &u); err != nil {
		logger.Error("Failed to upsert user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save user",
		})
	}

	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "User saved successfully",
		Data:    u,
	})
}
