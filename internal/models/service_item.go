package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceItem struct {
	ID              string `gorm:"primaryKey;size:36" json:"id"`
	Name            string `gorm:"size:100;not null;index" json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	PriceCents      int    `json:"priceCents"`
	Active          bool   `gorm:"default:true" json:"active"`
}

func (s *ServiceItem) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
