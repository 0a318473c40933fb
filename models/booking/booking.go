package booking

import (
	"time"
)

// Booking links a room, a guest and a payment reference. The room reference
// is weak: deleting a room does not touch its historical bookings.
type Booking struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid string `gorm:"type:varchar(255);not null;unique" json:"uuid"`

	RoomID       uint    `gorm:"not null;index" json:"room_id"`
	RoomTitle    string  `gorm:"type:varchar(255)" json:"room_title"`
	RoomLocation string  `gorm:"type:varchar(255)" json:"room_location"`
	Price        float64 `gorm:"not null" json:"price"`

	GuestEmail string `gorm:"type:varchar(255);not null;index" json:"guest_email"`
	GuestName  string `gorm:"type:varchar(255)" json:"guest_name"`

	// Host email is copied from the room at claim time so host-side listing
	// does not need a join. Written only by the reservation engine.
	HostEmail string `gorm:"type:varchar(255);not null;index" json:"host_email"`

	// Authorization handle from the payment processor. Null until the
	// authorization succeeds.
	PaymentRef *string `gorm:"type:varchar(255)" json:"payment_ref,omitempty"`

	Status Status `gorm:"type:varchar(30);not null;index" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
