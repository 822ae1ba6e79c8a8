package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser   = "USER"
	RoleBarber = "BARBER"
	RoleAdmin  = "ADMIN"
)

type User struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'USER'" json:"role"`

	// Set when the user is a BARBER linked to a Barber profile.
	BarberID string `gorm:"size:36" json:"barberId,omitempty"`

	Name       string `gorm:"size:100" json:"name"`
	AvatarPath string `gorm:"size:255" json:"-"`

	// Single-use password reset code.
	ResetCode   string     `gorm:"size:12" json:"-"`
	ResetExpiry *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
