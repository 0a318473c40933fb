package booking

import (
	"fmt"
)

// BookingCreateRequest represents the payload for reserving a room. The
// price is the quote shown to the guest; the engine re-validates it before
// any payment call.
type BookingCreateRequest struct {
	RoomID     uint    `json:"room_id"`
	Price      float64 `json:"price"`
	GuestName  string  `json:"guest_name"`
	GuestEmail string  `json:"guest_email,omitempty"` // ignored; the bearer claim wins
}

func (b BookingCreateRequest) Validate() error {
	if b.RoomID == 0 {
		return fmt.Errorf("room_id is required")
	}
	return nil
}
