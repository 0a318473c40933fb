package room

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Room is a listing offered by a host. Availability is the single column
// the reservation engine races on; everything else is listing metadata.
type Room struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title    string  `gorm:"type:varchar(255);not null" json:"title"`
	Location string  `gorm:"type:varchar(255)" json:"location"`
	Price    float64 `gorm:"not null" json:"price"`

	HostEmail string `gorm:"type:varchar(255);not null;index" json:"host_email"`
	HostName  string `gorm:"type:varchar(255)" json:"host_name"`

	// Free-form listing attributes (images, amenities, stay dates). Opaque
	// to the backend; stored as a JSON column.
	Details Payload `gorm:"type:json" json:"details"`

	Availability Availability `gorm:"type:varchar(20);not null;index" json:"availability"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// Payload is a custom type to handle JSON serialization for PostgreSQL
type Payload map[string]interface{}

// Scan implements the Scanner interface for database deserialization
func (p *Payload) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, p)
}

// Value implements the driver Valuer interface for database serialization
func (p Payload) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}
