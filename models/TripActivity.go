package models

import (
	"time"

	"gorm.io/gorm"
)

// TripActivity links an Activity into a Trip's itinerary.
type TripActivity struct {
	gorm.Model
	TripID      uint       `json:"tripID" gorm:"index;not null"`
	ActivityID  uint       `json:"activityID" gorm:"index;not null"`
	Activity    *Activity  `json:"activity,omitempty" gorm:"foreignKey:ActivityID;references:ID"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	Notes       string     `json:"notes"`
}
