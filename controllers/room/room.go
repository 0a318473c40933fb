package room

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"aircnc-booking/logger"
	"aircnc-booking/middleware"
	roomModel "aircnc-booking/models/room"
	"aircnc-booking/repository"
	"aircnc-booking/services/reservation"
	"aircnc-booking/types"
	roomTypes "aircnc-booking/types/room"

	"github.com/gofiber/fiber/v2"
)

// RoomStore is the slice of the room facade the controller needs.
type RoomStore interface {
	Create(ctx context.Context, r *roomModel.Room) error
	ByID(ctx context.Context, id uint) (*roomModel.Room, error)
	All(ctx context.Context) ([]roomModel.Room, error)
	ByHostEmail(ctx context.Context, email string) ([]roomModel.Room, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

// BookingLedger is the slice of the booking facade the controller needs.
type BookingLedger interface {
	ActiveCountForRoom(ctx context.Context, roomID uint) (int64, error)
}

// Engine is the slice of the reservation engine the controller needs.
type Engine interface {
	SetRoomAvailability(ctx context.Context, roomID uint, a roomModel.Availability) error
}

// RoomController handles listing CRUD. Availability is never written here
// directly; SetStatus delegates to the engine's flagged override.
type RoomController struct {
	rooms  RoomStore
	ledger BookingLedger
	engine Engine
}

func NewRoomController(rooms RoomStore, ledger BookingLedger, engine Engine) *RoomController {
	return &RoomController{rooms: rooms, ledger: ledger, engine: engine}
}

// Index returns every listed room.
// GET /all-rooms
func (rc *RoomController) Index(c *fiber.Ctx) error {
	rooms, err := rc.rooms.All(c.UserContext())
	if err != nil {
		logger.Error("Failed to list rooms", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	return c.JSON(rooms)
}

// Show returns a single room.
// GET /room/:id
func (rc *RoomController) Show(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid room id",
		})
	}

	room, err := rc.rooms.ByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Room not found",
			})
		}
		logger.Error("Failed to load room", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	return c.JSON(room)
}

// HostedRooms returns the rooms owned by the authenticated host.
// GET /rooms/:email
func (rc *RoomController) HostedRooms(c *fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok || claims.Email != c.Params("email") {
		return c.Status(fiber.StatusForbidden).JSON(types.AuthFailure{
			Error:   true,
			Message: "unauthorized access",
		})
	}

	rooms, err := rc.rooms.ByHostEmail(c.UserContext(), claims.Email)
	if err != nil {
		logger.Error("Failed to list hosted rooms", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	return c.JSON(rooms)
}

// Store lists a new room for the authenticated host.
// POST /add-rooms
func (rc *RoomController) Store(c *fiber.Ctx) error {
	var req roomTypes.RoomCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse room payload", err)
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
	if !ok || claims.Email != req.HostEmail {
		return c.Status(fiber.StatusForbidden).JSON(types.AuthFailure{
			Error:   true,
			Message: "unauthorized access",
		})
	}

	room := roomModel.Room{
		Title:        req.Title,
		Location:     req.Location,
		Price:        req.Price,
		HostEmail:    req.HostEmail,
		HostName:     req.HostName,
		Details:      roomModel.Payload(req.Details),
		Availability: roomModel.Available,
	}

	if err := rc.rooms.Create(c.UserContext(), &room); err != nil {
		logger.Error("Failed to create room", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save room",
		})
	}

	logger.Success(fmt.Sprintf("Room created successfully with ID: %d", room.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Room created successfully",
		Data:    room,
	})
}

// Update patches a room's descriptive fields.
// PUT /room-update/:id
func (rc *RoomController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid room id",
		})
	}

	var req roomTypes.RoomUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse room update payload", err)
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

	if ok, resp := rc.requireOwner(c, id); !ok {
		return resp
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Nothing to update",
		})
	}

	if err := rc.rooms.UpdateFields(c.UserContext(), id, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Room not found",
			})
		}
		logger.Error("Failed to update room", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update room",
		})
	}

	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Room updated successfully",
	})
}

// Delete removes a listing. Fails with a conflict while an active booking
// references the room; the booking must be cancelled first.
// DELETE /delete-room/:id
func (rc *RoomController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid room id",
		})
	}

	if ok, resp := rc.requireOwner(c, id); !ok {
		return resp
	}

	active, err := rc.ledger.ActiveCountForRoom(c.UserContext(), id)
	if err != nil {
		logger.Error("Failed to check active bookings for room", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	if active > 0 {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Room has an active booking; cancel it before deleting",
		})
	}

	if err := rc.rooms.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Room not found",
			})
		}
		logger.Error("Failed to delete room", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete room",
		})
	}

	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Room deleted successfully",
	})
}

// SetStatus is the administrative availability override. It bypasses the
// booking ledger and can desynchronize the flag from booking truth; it is
// kept for reconciliation only.
// PATCH /room/status/:id
func (rc *RoomController) SetStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid room id",
		})
	}

	var req roomTypes.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse status payload", err)
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

	if ok, resp := rc.requireOwner(c, id); !ok {
		return resp
	}

	if err := rc.engine.SetRoomAvailability(c.UserContext(), id, roomModel.Availability(req.Status)); err != nil {
		if errors.Is(err, reservation.ErrRoomNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Room not found",
			})
		}
		logger.Error("Failed to override room status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update room status",
		})
	}

	logger.Warning(fmt.Sprintf("Room %d availability overridden to %s, bypassing the ledger", id, req.Status))
	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Room status updated",
	})
}

// requireOwner loads the room and checks the bearer claim against the host.
// When the caller may not proceed it writes the response and returns
// ok=false.
func (rc *RoomController) requireOwner(c *fiber.Ctx, id uint) (bool, error) {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return false, c.Status(fiber.StatusForbidden).JSON(types.AuthFailure{
			Error:   true,
			Message: "unauthorized access",
		})
	}

	room, err := rc.rooms.ByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Room not found",
			})
		}
		logger.Error("Failed to load room for ownership check", err)
		return false, c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	if room.HostEmail != claims.Email {
		return false, c.Status(fiber.StatusForbidden).JSON(types.AuthFailure{
			Error:   true,
			Message: "unauthorized access",
		})
	}

	return true, nil
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
