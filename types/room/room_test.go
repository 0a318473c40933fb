package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomCreateRequestValidate(t *testing.T) {
	valid := RoomCreateRequest{Title: "Sea View Cottage", HostEmail: "host@example.com", Price: 100}
	assert.NoError(t, valid.Validate())

	assert.Error(t, RoomCreateRequest{HostEmail: "host@example.com", Price: 100}.Validate())
	assert.Error(t, RoomCreateRequest{Title: "t", Price: 100}.Validate())
	assert.Error(t, RoomCreateRequest{Title: "t", HostEmail: "h@example.com", Price: 0}.Validate())
}

func TestRoomUpdateRequestFields(t *testing.T) {
	title := "New Title"
	price := 120.0
	req := RoomUpdateRequest{Title: &title, Price: &price}

	fields := req.Fields()
	assert.Equal(t, "New Title", fields["title"])
	assert.Equal(t, 120.0, fields["price"])
	assert.NotContains(t, fields, "location")
	assert.NotContains(t, fields, "availability")
}

func TestStatusUpdateRequestValidate(t *testing.T) {
	assert.NoError(t, StatusUpdateRequest{Status: "available"}.Validate())
	assert.NoError(t, StatusUpdateRequest{Status: "booked"}.Validate())
	assert.Error(t, StatusUpdateRequest{Status: "maybe"}.Validate())
	assert.Error(t, StatusUpdateRequest{Status: ""}.Validate())
}
