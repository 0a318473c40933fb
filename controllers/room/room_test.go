package room

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"aircnc-booking/middleware"
	roomModel "aircnc-booking/models/room"
	"aircnc-booking/repository"
	"aircnc-booking/services/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoomStore struct {
	mu     sync.Mutex
	nextID uint
	rooms  map[uint]*roomModel.Room
}

func newFakeRoomStore(rooms ...*roomModel.Room) *fakeRoomStore {
	s := &fakeRoomStore{nextID: 1, rooms: map[uint]*roomModel.Room{}}
	for _, r := range rooms {
		s.rooms[r.ID] = r
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}
	return s
}

func (s *fakeRoomStore) Create(ctx context.Context, r *roomModel.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.nextID
	s.nextID++
	cp := *r
	s.rooms[r.ID] = &cp
	return nil
}

func (s *fakeRoomStore) ByID(ctx context.Context, id uint) (*roomModel.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *fakeRoomStore) All(ctx context.Context) ([]roomModel.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []roomModel.Room{}
	for _, r := range s.rooms {
		out = append(out, *r)
	}
	return out, nil
}

func (s *fakeRoomStore) ByHostEmail(ctx context.Context, email string) ([]roomModel.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []roomModel.Room{}
	for _, r := range s.rooms {
		if r.HostEmail == email {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *fakeRoomStore) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return repository.ErrNotFound
	}
	if title, ok := fields["title"].(string); ok {
		r.Title = title
	}
	if price, ok := fields["price"].(float64); ok {
		r.Price = price
	}
	return nil
}

func (s *fakeRoomStore) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.rooms, id)
	return nil
}

type fakeLedger struct {
	active map[uint]int64
}

func (l *fakeLedger) ActiveCountForRoom(ctx context.Context, roomID uint) (int64, error) {
	return l.active[roomID], nil
}

type fakeEngine struct{}

func (fakeEngine) SetRoomAvailability(ctx context.Context, roomID uint, a roomModel.Availability) error {
	return nil
}

func testApp(rc *RoomController, tokens *token.Service) *fiber.App {
	app := fiber.New()
	requireAuth := middleware.RequireAuth(tokens)
	app.Get("/all-rooms", rc.Index)
	app.Delete("/delete-room/:id", requireAuth, rc.Delete)
	return app
}

func hostRoom() *roomModel.Room {
	return &roomModel.Room{
		ID:           1,
		Title:        "Sea View Cottage",
		Location:     "Cox's Bazar",
		Price:        100,
		HostEmail:    "host@example.com",
		Availability: roomModel.Booked,
	}
}

func deleteRequest(t *testing.T, tokens *token.Service, email string) *http.Request {
	t.Helper()
	signed, err := tokens.Issue(email)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodDelete, "/delete-room/1", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	return req
}

func TestDeleteRoomBlockedByActiveBooking(t *testing.T) {
	tokens := token.NewService("test-secret")
	store := newFakeRoomStore(hostRoom())
	rc := NewRoomController(store, &fakeLedger{active: map[uint]int64{1: 1}}, fakeEngine{})
	app := testApp(rc, tokens)

	resp, err := app.Test(deleteRequest(t, tokens, "host@example.com"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// The listing survives while a booking references it.
	_, err = store.ByID(context.Background(), 1)
	assert.NoError(t, err)
}

func TestDeleteRoomAfterBookingCancelled(t *testing.T) {
	tokens := token.NewService("test-secret")
	room := hostRoom()
	room.Availability = roomModel.Available
	store := newFakeRoomStore(room)
	rc := NewRoomController(store, &fakeLedger{active: map[uint]int64{}}, fakeEngine{})
	app := testApp(rc, tokens)

	resp, err := app.Test(deleteRequest(t, tokens, "host@example.com"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, err = store.ByID(context.Background(), 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteRoomRejectsNonOwner(t *testing.T) {
	tokens := token.NewService("test-secret")
	store := newFakeRoomStore(hostRoom())
	rc := NewRoomController(store, &fakeLedger{active: map[uint]int64{}}, fakeEngine{})
	app := testApp(rc, tokens)

	resp, err := app.Test(deleteRequest(t, tokens, "stranger@example.com"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	_, err = store.ByID(context.Background(), 1)
	assert.NoError(t, err)
}

func TestIndexEmptyMarshalsEmptyArray(t *testing.T) {
	rc := NewRoomController(newFakeRoomStore(), &fakeLedger{}, fakeEngine{})
	app := fiber.New()
	app.Get("/all-rooms", rc.Index)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/all-rooms", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(body)))
}
