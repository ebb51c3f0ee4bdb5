package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"

	StatusActive    = "ACTIVE"
	StatusSuspended = "SUSPENDED"
)

type User struct {
	gorm.Model
	Name       string      `json:"name"`
	Email      string      `json:"email" gorm:"uniqueIndex;not null"`
	Password   string      `json:"-"`
	Role       string      `json:"role" gorm:"type:varchar(20);default:USER;index"` // USER, ADMIN
	Status     string      `json:"status" gorm:"type:varchar(20);default:ACTIVE;index"`
	AvatarURL  string      `json:"avatarURL"`
	LastLogin  *time.Time  `json:"lastLogin"`
	Trips      []Trip      `json:"trips,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	ShareLinks []ShareLink `json:"shareLinks,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// PublicProfile is the user subset embedded in shared trips and admin lists.
func (u *User) PublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":        u.ID,
		"name":      u.Name,
		"email":     u.Email,
		"avatarURL": u.AvatarURL,
	}
}
