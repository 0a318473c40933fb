package reservation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	payment "aircnc-booking/httpServices/payment"
	"aircnc-booking/logger"
	bookingModel "aircnc-booking/models/booking"
	roomModel "aircnc-booking/models/room"
	"aircnc-booking/repository"

	"github.com/google/uuid"
)

// RoomStore is the slice of the room facade the engine needs.
type RoomStore interface {
	ByID(ctx context.Context, id uint) (*roomModel.Room, error)
	Claim(ctx context.Context, id uint) (bool, error)
	Release(ctx context.Context, id uint) error
	SetAvailability(ctx context.Context, id uint, a roomModel.Availability) error
}

// BookingLedger is the slice of the ledger facade the engine needs.
type BookingLedger interface {
	Create(ctx context.Context, b *bookingModel.Booking) error
	ByID(ctx context.Context, id uint) (*bookingModel.Booking, error)
	ByGuestEmail(ctx context.Context, email string) ([]bookingModel.Booking, error)
	ByHostEmail(ctx context.Context, email string) ([]bookingModel.Booking, error)
	Confirm(ctx context.Context, id uint, paymentRef string) error
	Cancel(ctx context.Context, id uint) error
}

// PaymentGateway creates charge authorization intents.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount float64, currency, idempotencyKey string) (*payment.Intent, error)
}

// Engine orchestrates room claims, payment authorization and ledger writes.
// The claim-then-pay ordering closes the double-booking race: the room is
// claimed with a conditional update before the gateway is contacted, and the
// claim is compensated if anything downstream fails. No store lock is ever
// held across the gateway call.
type Engine struct {
	rooms          RoomStore
	ledger         BookingLedger
	gateway        PaymentGateway
	gatewayTimeout time.Duration
}

func NewEngine(rooms RoomStore, ledger BookingLedger, gateway PaymentGateway) *Engine {
	return &Engine{
		rooms:          rooms,
		ledger:         ledger,
		gateway:        gateway,
		gatewayTimeout: 15 * time.Second,
	}
}

// RequestBooking reserves a room for a guest at the quoted price.
//
// State machine: the booking is created PENDING_PAYMENT under a provisional
// room claim, then moves to CONFIRMED when the authorization succeeds or to
// CANCELLED (with the room released) when it fails.
func (e *Engine) RequestBooking(ctx context.Context, roomID uint, guestEmail, guestName string, price float64) (*bookingModel.Booking, error) {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, ErrInvalidAmount
	}

	room, err := e.rooms.ByID(ctx, roomID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if room.Availability == roomModel.Booked {
		return nil, ErrRoomUnavailable
	}

	claimed, err := e.rooms.Claim(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		// A concurrent request won the conditional update.
		return nil, ErrRoomUnavailable
	}

	b := &bookingModel.Booking{
		Uuid:         uuid.NewString(),
		RoomID:       room.ID,
		RoomTitle:    room.Title,
		RoomLocation: room.Location,
		Price:        price,
		GuestEmail:   guestEmail,
		GuestName:    guestName,
		HostEmail:    room.HostEmail,
		Status:       bookingModel.StatusPendingPayment,
	}

	if err := e.ledger.Create(ctx, b); err != nil {
		// The claim must never outlive a failed ledger write.
		e.releaseClaim(roomID)
		return nil, err
	}

	// The gateway call holds no store lock; other callers are repelled by
	// the committed claim, not by blocking on network latency.
	gctx, cancel := context.WithTimeout(ctx, e.gatewayTimeout)
	defer cancel()

	intent, err := e.gateway.CreateIntent(gctx, price, "usd", b.Uuid)
	if err != nil {
		e.compensate(b.ID, roomID)
		return nil, fmt.Errorf("%w: %v", ErrPaymentDenied, err)
	}

	if err := e.ledger.Confirm(ctx, b.ID, intent.ID); err != nil {
		e.compensate(b.ID, roomID)
		return nil, err
	}

	b.Status = bookingModel.StatusConfirmed
	b.PaymentRef = &intent.ID
	return b, nil
}

// CancelBooking cancels a booking and releases its room. Idempotent: a
// second cancellation of the same booking succeeds without touching state.
// The requester must be the booking's guest or the room's host.
func (e *Engine) CancelBooking(ctx context.Context, bookingID uint, requesterEmail string) error {
	b, err := e.ledger.ByID(ctx, bookingID)
	if err != nil {
		if isNotFound(err) {
			return ErrBookingNotFound
		}
		return err
	}

	if requesterEmail != b.GuestEmail && requesterEmail != b.HostEmail {
		return ErrForbidden
	}

	if b.Status == bookingModel.StatusCancelled {
		return nil
	}

	if err := e.ledger.Cancel(ctx, b.ID); err != nil {
		if isNotFound(err) {
			// A concurrent canceller performed the transition; the release
			// is theirs, and the room may already be claimed again.
			return nil
		}
		return err
	}

	// Second atomic step of the compensation pair, performed only by the
	// caller whose conditional update cancelled the booking; a concurrent
	// request on the now-free room serializes on the store's conditional
	// update.
	return e.rooms.Release(ctx, b.RoomID)
}

// BookingsForGuest lists a guest's bookings. Always returns a non-nil
// slice so the handler marshals an empty list rather than null.
func (e *Engine) BookingsForGuest(ctx context.Context, email string) ([]bookingModel.Booking, error) {
	bookings, err := e.ledger.ByGuestEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []bookingModel.Booking{}
	}
	return bookings, nil
}

// BookingsForHost lists bookings against a host's rooms. The host email is
// recorded on the ledger row at claim time, so this reads committed state
// without a join.
func (e *Engine) BookingsForHost(ctx context.Context, email string) ([]bookingModel.Booking, error) {
	bookings, err := e.ledger.ByHostEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []bookingModel.Booking{}
	}
	return bookings, nil
}

// SetRoomAvailability writes the availability flag directly, bypassing the
// ledger. Consistency hazard: calling this outside an administrative
// reconciliation can desynchronize the flag from booking truth. It exists
// because the API exposes a status override; prefer RequestBooking and
// CancelBooking for everything else.
func (e *Engine) SetRoomAvailability(ctx context.Context, roomID uint, a roomModel.Availability) error {
	if err := e.rooms.SetAvailability(ctx, roomID, a); err != nil {
		if isNotFound(err) {
			return ErrRoomNotFound
		}
		return err
	}
	return nil
}

// compensate cancels the pending booking and releases the claim after a
// downstream failure. Runs on a fresh context so a caller timeout cannot
// strand a falsely BOOKED room.
func (e *Engine) compensate(bookingID, roomID uint) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.ledger.Cancel(ctx, bookingID); err != nil {
		// The release belongs to whichever caller cancelled the booking.
		// Releasing here after losing that race would free a room a newer
		// confirmed booking holds.
		if !isNotFound(err) {
			logger.Error(fmt.Sprintf("failed to cancel booking %d during compensation", bookingID), err)
		}
		return
	}
	if err := e.rooms.Release(ctx, roomID); err != nil {
		logger.Error(fmt.Sprintf("failed to release room %d during compensation", roomID), err)
	}
}

func (e *Engine) releaseClaim(roomID uint) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.rooms.Release(ctx, roomID); err != nil {
		logger.Error(fmt.Sprintf("failed to release room %d after claim", roomID), err)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
