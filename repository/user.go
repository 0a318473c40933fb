package repository

import (
	"context"
	"errors"

	userModel "aircnc-booking/models/user"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserStore is the persistence facade for identity lookups.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) ByEmail(ctx context.Context, email string) (*userModel.User, error) {
	var u userModel.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Upsert creates the user or refreshes the mutable profile fields.
func (s *UserStore) Upsert(ctx context.Context, u *userModel.User) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "avatar", "role", "updated_at"}),
	}).Create(u).Error
}
