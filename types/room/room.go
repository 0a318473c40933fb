package room

import (
	"fmt"

	roomModel "aircnc-booking/models/room"
)

// RoomCreateRequest represents the payload for listing a new room.
type RoomCreateRequest struct {
	Title     string                 `json:"title"`
	Location  string                 `json:"location"`
	Price     float64                `json:"price"`
	HostEmail string                 `json:"host_email"`
	HostName  string                 `json:"host_name"`
	Details   map[string]interface{} `json:"details"`
}

func (r RoomCreateRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.HostEmail == "" {
		return fmt.Errorf("host_email is required")
	}
	if r.Price <= 0 {
		return fmt.Errorf("price must be greater than 0")
	}
	return nil
}

// RoomUpdateRequest represents a partial update of a room listing.
// Availability is deliberately absent; it moves only through the
// reservation engine or the status endpoint.
type RoomUpdateRequest struct {
	Title    *string                `json:"title"`
	Location *string                `json:"location"`
	Price    *float64               `json:"price"`
	Details  map[string]interface{} `json:"details"`
}

// Fields returns the set of columns to patch.
func (r RoomUpdateRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Location != nil {
		fields["location"] = *r.Location
	}
	if r.Price != nil {
		fields["price"] = *r.Price
	}
	if r.Details != nil {
		fields["details"] = roomModel.Payload(r.Details)
	}
	return fields
}

func (r RoomUpdateRequest) Validate() error {
	if r.Price != nil && *r.Price <= 0 {
		return fmt.Errorf("price must be greater than 0")
	}
	return nil
}

// StatusUpdateRequest carries the administrative availability override.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

func (r StatusUpdateRequest) Validate() error {
	if !roomModel.Availability(r.Status).IsValid() {
		return fmt.Errorf("status must be one of 'available' or 'booked'")
	}
	return nil
}
