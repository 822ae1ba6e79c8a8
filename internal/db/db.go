package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/freshcut-app/freshcut-api/internal/config"
	"github.com/freshcut-app/freshcut-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barber{},
		&models.ServiceItem{},
		&models.Schedule{},
		&models.Booking{},
		&models.User{},
		&models.ChatLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	installOverlapConstraint(db)

	return db
}

// Start/end columns migrate as timestamptz, so the range must be a
// tstzrange; tsrange would not resolve against timestamptz arguments.
const overlapConstraintDDL = `
    DO $$
    BEGIN
        IF NOT EXISTS (
            SELECT 1 FROM pg_constraint WHERE conname = 'bookings_no_overlap'
        ) THEN
            ALTER TABLE bookings
                ADD CONSTRAINT bookings_no_overlap
                EXCLUDE USING gist (
                    barber WITH =,
                    tstzrange(start_time, end_time) WITH &&
                );
        END IF;
    END
    $$
`

// installOverlapConstraint adds the cross-process backstop for the booking
// check-then-insert race: the database rejects any second interval for the
// same barber name. A failure here leaves only the in-process per-barber
// lock, so it is logged loudly instead of being swallowed.
func installOverlapConstraint(db *gorm.DB) {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Printf("WARNING: btree_gist extension unavailable, overlap constraint skipped: %v", err)
		return
	}
	if err := db.Exec(overlapConstraintDDL).Error; err != nil {
		log.Printf("WARNING: bookings_no_overlap constraint not installed, overlap enforcement is in-process only: %v", err)
	}
}
