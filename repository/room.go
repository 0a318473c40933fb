package repository

import (
	"context"
	"errors"

	roomModel "aircnc-booking/models/room"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist. It keeps business
// absence distinguishable from store faults.
var ErrNotFound = errors.New("record not found")

// RoomStore is the persistence facade for room listings. Availability moves
// only through Claim, Release and SetAvailability.
type RoomStore struct {
	db *gorm.DB
}

func NewRoomStore(db *gorm.DB) *RoomStore {
	return &RoomStore{db: db}
}

func (s *RoomStore) Create(ctx context.Context, r *roomModel.Room) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *RoomStore) ByID(ctx context.Context, id uint) (*roomModel.Room, error) {
	var r roomModel.Room
	if err := s.db.WithContext(ctx).First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (s *RoomStore) All(ctx context.Context) ([]roomModel.Room, error) {
	// Non-nil so an empty result marshals as [] and not null.
	rooms := []roomModel.Room{}
	if err := s.db.WithContext(ctx).Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *RoomStore) ByHostEmail(ctx context.Context, email string) ([]roomModel.Room, error) {
	rooms := []roomModel.Room{}
	if err := s.db.WithContext(ctx).Where("host_email = ?", email).Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// UpdateFields patches the given columns on a room.
func (s *RoomStore) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	res := s.db.WithContext(ctx).Model(&roomModel.Room{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RoomStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&roomModel.Room{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Claim atomically flips the room from AVAILABLE to BOOKED. The conditional
// update is the serialization point for concurrent reservation requests:
// exactly one caller sees claimed=true, everyone else sees claimed=false.
func (s *RoomStore) Claim(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Model(&roomModel.Room{}).
		Where("id = ? AND availability = ?", id, roomModel.Available).
		Update("availability", roomModel.Booked)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Release reverts a claim. Safe to call when the room is already AVAILABLE.
func (s *RoomStore) Release(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Model(&roomModel.Room{}).
		Where("id = ?", id).
		Update("availability", roomModel.Available).Error
}

// SetAvailability writes the flag unconditionally. Administrative override
// only; bypasses the ledger.
func (s *RoomStore) SetAvailability(ctx context.Context, id uint, a roomModel.Availability) error {
	res := s.db.WithContext(ctx).Model(&roomModel.Room{}).
		Where("id = ?", id).
		Update("availability", a)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
