package room

// Availability is the room occupancy flag the reservation engine
// compare-and-swaps on.
type Availability string

const (
	Available Availability = "available"
	Booked    Availability = "booked"
)

func (a Availability) String() string {
	return string(a)
}

func (a Availability) IsValid() bool {
	switch a {
	case Available, Booked:
		return true
	default:
		return false
	}
}
