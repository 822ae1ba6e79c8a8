package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule is one weekly availability window for a barber. A barber may
// have several windows on the same weekday; overlap between windows is the
// caller's responsibility.
type Schedule struct {
	ID        string       `gorm:"primaryKey;size:36" json:"id"`
	BarberID  string       `gorm:"size:36;index:idx_schedules_barber_day" json:"barberId"`
	DayOfWeek time.Weekday `gorm:"index:idx_schedules_barber_day" json:"dayOfWeek"`

	// Local times of day in "15:04" form.
	StartTime string `gorm:"size:5" json:"startTime"`
	EndTime   string `gorm:"size:5" json:"endTime"`
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
