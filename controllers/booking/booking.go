package booking

import (
	"errors"
	"fmt"
	"strconv"

	"aircnc-booking/logger"
	"aircnc-booking/middleware"
	"aircnc-booking/services/reservation"
	"aircnc-booking/types"
	bookingTypes "aircnc-booking/types/booking"

	"github.com/gofiber/fiber/v2"
)

// BookingController translates HTTP into reservation engine calls. All
// booking state changes go through the engine; nothing here writes the
// store directly.
type BookingController struct {
	engine *reservation.Engine
}

func NewBookingController(engine *reservation.Engine) *BookingController {
	return &BookingController{engine: engine}
}

// Store reserves a room for the authenticated guest at the quoted price.
// POST /room-bookings
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse booking payload", err)
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

	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(types.AuthFailure{
			Error:   true,
			Message: "unauthorized access",
		})
	}

	booking, err := bc.engine.RequestBooking(c.UserContext(), req.RoomID, claims.Email, req.GuestName, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrInvalidAmount):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Price must be a positive amount",
			})
		case errors.Is(err, reservation.ErrRoomNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Room not found",
			})
		case errors.Is(err, reservation.ErrRoomUnavailable):
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Status:  fiber.StatusConflict,
				Message: "Room is already booked, choose another room",
			})
		case errors.Is(err, reservation.ErrPaymentDenied):
			return c.Status(fiber.StatusPaymentRequired).JSON(types.ApiResponse{
				Status:  fiber.StatusPaymentRequired,
				Message: err.Error(),
			})
		default:
			logger.Error("Failed to create booking", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to save booking",
			})
		}
	}

	logger.Success(fmt.Sprintf("Booking confirmed with ID: %d for room %d", booking.ID, booking.RoomID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking confirmed successfully",
		Data:    booking,
	})
}

// GuestBookings lists a guest's bookings.
// GET /my-bookings-room/:email
func (bc *BookingController) GuestBookings(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return c.JSON([]interface{}{})
	}

	bookings, err := bc.engine.BookingsForGuest(c.UserContext(), email)
	if err != nil {
		logger.Error("Failed to list guest bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	return c.JSON(bookings)
}

// HostBookings lists the bookings made against a host's rooms.
// GET /booked-room?email=
func (bc *BookingController) HostBookings(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.JSON([]interface{}{})
	}

	bookings, err := bc.engine.BookingsForHost(c.UserContext(), email)
	if err != nil {
		logger.Error("Failed to list host bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	return c.JSON(bookings)
}

// Delete cancels a booking and frees its room. Idempotent.
// DELETE /delete-booking/:id
func (bc *BookingController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
		})
	}

	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(types.AuthFailure{
			Error:   true,
			Message: "unauthorized access",
		})
	}

	if err := bc.engine.CancelBooking(c.UserContext(), uint(id), claims.Email); err != nil {
		switch {
		case errors.Is(err, reservation.ErrBookingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Booking not found",
			})
		case errors.Is(err, reservation.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(types.AuthFailure{
				Error:   true,
				Message: "unauthorized access",
			})
		default:
			logger.Error("Failed to cancel booking", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to cancel booking",
			})
		}
	}

	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking cancelled successfully",
	})
}
