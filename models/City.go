package models

import "gorm.io/gorm"

type City struct {
	gorm.Model
	Name        string     `json:"name" gorm:"index;not null"`
	Country     string     `json:"country" gorm:"index"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	CatalogCode string     `json:"catalogCode" gorm:"uniqueIndex;size:8"` // external catalog code, e.g. PAR
	Description string     `json:"description"`
	Activities  []Activity `json:"activities,omitempty" gorm:"foreignKey:CityID;references:ID;constraint:OnDelete:CASCADE"`
}
