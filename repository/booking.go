package repository

import (
	"context"
	"errors"

	bookingModel "aircnc-booking/models/booking"

	"gorm.io/gorm"
)

// BookingLedger is the persistence facade for reservations. Status moves
// only through the transition methods so the state machine stays closed.
type BookingLedger struct {
	db *gorm.DB
}

func NewBookingLedger(db *gorm.DB) *BookingLedger {
	return &BookingLedger{db: db}
}

func (l *BookingLedger) Create(ctx context.Context, b *bookingModel.Booking) error {
	return l.db.WithContext(ctx).Create(b).Error
}

func (l *BookingLedger) ByID(ctx context.Context, id uint) (*bookingModel.Booking, error) {
	var b bookingModel.Booking
	if err := l.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (l *BookingLedger) ByGuestEmail(ctx context.Context, email string) ([]bookingModel.Booking, error) {
	// Non-nil so an empty result marshals as [] and not null.
	bookings := []bookingModel.Booking{}
	if err := l.db.WithContext(ctx).Where("guest_email = ?", email).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (l *BookingLedger) ByHostEmail(ctx context.Context, email string) ([]bookingModel.Booking, error) {
	bookings := []bookingModel.Booking{}
	if err := l.db.WithContext(ctx).Where("host_email = ?", email).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Confirm transitions PENDING_PAYMENT -> CONFIRMED and records the payment
// reference. The status condition enforces the state machine at the store.
func (l *BookingLedger) Confirm(ctx context.Context, id uint, paymentRef string) error {
	res := l.db.WithContext(ctx).Model(&bookingModel.Booking{}).
		Where("id = ? AND status = ?", id, bookingModel.StatusPendingPayment).
		Updates(map[string]interface{}{
			"status":      bookingModel.StatusConfirmed,
			"payment_ref": paymentRef,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Cancel transitions any non-terminal state to CANCELLED. Cancelling an
// already-cancelled booking reports ErrNotFound so callers can treat it as
// a no-op.
func (l *BookingLedger) Cancel(ctx context.Context, id uint) error {
	res := l.db.WithContext(ctx).Model(&bookingModel.Booking{}).
		Where("id = ? AND status <> ?", id, bookingModel.StatusCancelled).
		Update("status", bookingModel.StatusCancelled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ActiveCountForRoom counts pending or confirmed bookings referencing a
// room. Used to block room deletion under an active reservation.
func (l *BookingLedger) ActiveCountForRoom(ctx context.Context, roomID uint) (int64, error) {
	var count int64
	err := l.db.WithContext(ctx).Model(&bookingModel.Booking{}).
		Where("room_id = ? AND status IN ?", roomID,
			[]bookingModel.Status{bookingModel.StatusPendingPayment, bookingModel.StatusConfirmed}).
		Count(&count).Error
	return count, err
}
