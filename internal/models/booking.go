package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking stores the barber and service by name on purpose: the record must
// stay readable even if the barber is renamed or removed later. BarberID is
// kept alongside the name as a snapshot for joins.
type Booking struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	ClientName string `gorm:"size:100;index" json:"clientName"`

	Barber   string `gorm:"size:100;index" json:"barber"`
	BarberID string `gorm:"size:36" json:"barberId"`

	Service string `gorm:"size:100" json:"service"`

	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	PriceCents int    `json:"priceCents"`
	Status     string `gorm:"size:20" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
