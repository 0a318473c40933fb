package reservation

import "errors"

var (
	// ErrInvalidAmount rejects a non-positive price quote before any state
	// is touched or the gateway contacted.
	ErrInvalidAmount = errors.New("price must be a positive amount")

	// ErrRoomNotFound means the requested room does not exist.
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomUnavailable means another booking holds the room. Racing
	// callers that lose the claim observe this, never a double charge.
	ErrRoomUnavailable = errors.New("room is not available")

	// ErrPaymentDenied wraps the gateway's reason after the provisional
	// claim has been compensated.
	ErrPaymentDenied = errors.New("payment authorization failed")

	// ErrBookingNotFound means the booking to cancel does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrForbidden means the requester is neither the booking's guest nor
	// the room's host.
	ErrForbidden = errors.New("not allowed to modify this booking")
)
