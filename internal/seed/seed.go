package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/freshcut-app/freshcut-api/internal/models"
)

type serviceSeed struct {
	name            string
	durationMinutes int
	priceCents      int
}

var baseServices = []serviceSeed{
	{"Corte clásico", 30, 1500},
	{"Fade medio", 45, 2000},
	{"Barba", 20, 1000},
	{"Corte de barba", 25, 1200},
	{"Mascarillas faciales", 15, 800},
	{"Kings Cut", 60, 3000},
}

var defaultWindowDays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
}

// Run populates development data. Idempotent: services are matched by
// name, the demo barber is only created when the table is empty, and
// default windows are only added to barbers that have none.
func Run(ctx context.Context, db *gorm.DB) error {
	if err := ensureServices(ctx, db); err != nil {
		return fmt.Errorf("seed services: %w", err)
	}
	if err := ensureDemoBarber(ctx, db); err != nil {
		return fmt.Errorf("seed demo barber: %w", err)
	}
	if err := backfillSchedules(ctx, db); err != nil {
		return fmt.Errorf("seed schedules: %w", err)
	}
	return nil
}

func ensureServices(ctx context.Context, db *gorm.DB) error {
	for _, s := range baseServices {
		var count int64
		err := db.WithContext(ctx).Model(&models.ServiceItem{}).
			Where("name = ?", s.name).Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		item := models.ServiceItem{
			Name:            s.name,
			DurationMinutes: s.durationMinutes,
			PriceCents:      s.priceCents,
			Active:          true,
		}
		if err := db.WithContext(ctx).Create(&item).Error; err != nil {
			return err
		}
		log.Printf("seeded service %q", s.name)
	}
	return nil
}

func ensureDemoBarber(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Barber{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	years := 8
	barber := models.Barber{
		Name:            "Barbero Demo",
		Specialties:     []string{"fade", "clásico", "barba"},
		Bio:             "Barbero de demostración para entorno de desarrollo.",
		ExperienceYears: &years,
		CutTypes:        []string{"fade", "undercut", "clásico"},
		Active:          true,
	}
	if err := db.WithContext(ctx).Create(&barber).Error; err != nil {
		return err
	}
	log.Printf("seeded demo barber %q", barber.Name)
	return nil
}

// backfillSchedules gives every barber without windows the default
// Mon-Fri 09:00-18:00 week so seeded data is bookable immediately.
func backfillSchedules(ctx context.Context, db *gorm.DB) error {
	var barbers []models.Barber
	if err := db.WithContext(ctx).Find(&barbers).Error; err != nil {
		return err
	}

	for _, b := range barbers {
		var count int64
		err := db.WithContext(ctx).Model(&models.Schedule{}).
			Where("barber_id = ?", b.ID).Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		for _, day := range defaultWindowDays {
			window := models.Schedule{
				BarberID:  b.ID,
				DayOfWeek: day,
				StartTime: "09:00",
				EndTime:   "18:00",
			}
			if err := db.WithContext(ctx).Create(&window).Error; err != nil {
				return err
			}
		}
		log.Printf("seeded default windows for barber %q", b.Name)
	}
	return nil
}
