package booking

// Status is the booking lifecycle state. CANCELLED is terminal; a new
// booking must be created for a re-attempt.
type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusConfirmed      Status = "confirmed"
	StatusCancelled      Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingPayment, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive returns true while the booking still holds (or is claiming) a room.
func (s Status) IsActive() bool {
	return s == StatusPendingPayment || s == StatusConfirmed
}

// IsTerminal returns true if no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled
}

// GetAllStatuses returns all valid booking statuses.
func GetAllStatuses() []Status {
	return []Status{
		StatusPendingPayment,
		StatusConfirmed,
		StatusCancelled,
	}
}
