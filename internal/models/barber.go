package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Barber struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Name string `gorm:"size:100;not null;index" json:"name"`

	Specialties     []string `gorm:"serializer:json" json:"specialties"`
	Bio             string   `gorm:"size:500" json:"bio"`
	ExperienceYears *int     `json:"experienceYears"`
	CutTypes        []string `gorm:"serializer:json" json:"cutTypes"`

	Active bool `gorm:"default:true" json:"active"`
}

func (b *Barber) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
