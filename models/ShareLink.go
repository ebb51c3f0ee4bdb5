package models

import (
	"time"

	"gorm.io/gorm"
)

// ShareLink grants time-bounded, unauthenticated read access to one trip.
type ShareLink struct {
	gorm.Model
	ShareID   string    `json:"shareId" gorm:"uniqueIndex;size:64;not null"`
	TripID    uint      `json:"tripId" gorm:"index;not null"`
	Trip      *Trip     `json:"trip,omitempty" gorm:"foreignKey:TripID;references:ID"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"index;not null"`
}

// Expired reports whether the link is past its validity window.
// Expired rows are rejected at read time, never deleted.
func (s *ShareLink) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
