package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/freshcut-app/freshcut-api/internal/models"
)

func newSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ServiceItem{}, &models.Barber{}, &models.Schedule{}))
	return db
}

func counts(t *testing.T, db *gorm.DB) (services, barbers, schedules int64) {
	t.Helper()

	require.NoError(t, db.Model(&models.ServiceItem{}).Count(&services).Error)
	require.NoError(t, db.Model(&models.Barber{}).Count(&barbers).Error)
	require.NoError(t, db.Model(&models.Schedule{}).Count(&schedules).Error)
	return
}

func TestRunSeedsBaseData(t *testing.T) {
	db := newSeedTestDB(t)

	require.NoError(t, Run(context.Background(), db))

	services, barbers, schedules := counts(t, db)
	assert.EqualValues(t, 6, services)
	assert.EqualValues(t, 1, barbers)
	assert.EqualValues(t, 5, schedules)

	var fade models.ServiceItem
	require.NoError(t, db.Where("name = ?", "Fade medio").First(&fade).Error)
	assert.Equal(t, 45, fade.DurationMinutes)
	assert.Equal(t, 2000, fade.PriceCents)
	assert.True(t, fade.Active)

	var windows []models.Schedule
	require.NoError(t, db.Order("day_of_week").Find(&windows).Error)
	for _, w := range windows {
		assert.Equal(t, "09:00", w.StartTime)
		assert.Equal(t, "18:00", w.EndTime)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	db := newSeedTestDB(t)

	require.NoError(t, Run(context.Background(), db))
	require.NoError(t, Run(context.Background(), db))

	services, barbers, schedules := counts(t, db)
	assert.EqualValues(t, 6, services)
	assert.EqualValues(t, 1, barbers)
	assert.EqualValues(t, 5, schedules)
}

func TestRunKeepsExistingBarbersAndBackfillsWindows(t *testing.T) {
	db := newSeedTestDB(t)

	existing := models.Barber{Name: "Ana Cortes", Active: true}
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, Run(context.Background(), db))

	// The demo barber is only created on an empty roster.
	_, barbers, schedules := counts(t, db)
	assert.EqualValues(t, 1, barbers)
	assert.EqualValues(t, 5, schedules)

	var windows []models.Schedule
	require.NoError(t, db.Where("barber_id = ?", existing.ID).Find(&windows).Error)
	assert.Len(t, windows, 5)
}
