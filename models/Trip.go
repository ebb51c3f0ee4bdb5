package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Trip struct {
	gorm.Model
	UserID         uint           `json:"userID" gorm:"index;not null"`
	User           *User          `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Name           string         `json:"name" gorm:"not null"`
	StartDate      time.Time      `json:"startDate"`
	EndDate        time.Time      `json:"endDate"`
	Destinations   datatypes.JSON `json:"destinations"`
	Status         string         `json:"status" gorm:"type:varchar(20);default:PLANNING;index"` // PLANNING, UPCOMING, ONGOING, COMPLETED
	TripActivities []TripActivity `json:"tripActivities,omitempty" gorm:"foreignKey:TripID;references:ID;constraint:OnDelete:CASCADE"`
}

// Custom JSON marshaling so Destinations comes out as a string slice
func (t *Trip) MarshalJSON() ([]byte, error) {
	type Alias Trip
	aux := &struct {
		Destinations []string `json:"destinations"`
		*Alias
	}{
		Destinations: []string{},
		Alias:        (*Alias)(t),
	}

	if t.Destinations != nil {
		var destinations []string
		if err := json.Unmarshal(t.Destinations, &destinations); err == nil {
			aux.Destinations = destinations
		}
	}

	return json.Marshal(aux)
}
