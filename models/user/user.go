package user

import (
	"time"
)

// User is the identity record behind an email claim. The booking core only
// reads it for lookups; profile management lives outside this service.
type User struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email  string `gorm:"type:varchar(255);not null;unique" json:"email"`
	Name   string `gorm:"type:varchar(255)" json:"name"`
	Avatar string `gorm:"type:varchar(2048)" json:"avatar"`
	Role   string `gorm:"type:varchar(50);default:guest" json:"role"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
