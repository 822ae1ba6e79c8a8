package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/freshcut-app/freshcut-api/internal/domain/booking"
	"github.com/freshcut-app/freshcut-api/internal/httperr"
	"github.com/freshcut-app/freshcut-api/internal/models"
)

// pgExclusionViolation is raised by the bookings_no_overlap constraint when
// two intervals for the same barber intersect.
const pgExclusionViolation = "23P01"

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catalog lookups
// --------------------------------------------------

func (r *BookingGormRepository) FindActiveServiceByName(
	ctx context.Context,
	name string,
) (*models.ServiceItem, error) {

	var s models.ServiceItem
	if err := r.db.WithContext(ctx).
		Where("name = ? AND active = ?", name, true).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *BookingGormRepository) FindActiveBarberByName(
	ctx context.Context,
	name string,
) (*models.Barber, error) {

	var b models.Barber
	if err := r.db.WithContext(ctx).
		Where("name = ? AND active = ?", name, true).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) FindSchedules(
	ctx context.Context,
	barberID string,
	day time.Weekday,
) ([]models.Schedule, error) {

	var windows []models.Schedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND day_of_week = ?", barberID, int(day)).
		Order("start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}
	return windows, nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *BookingGormRepository) FindOverlapping(
	ctx context.Context,
	barber string,
	end time.Time,
	start time.Time,
) ([]models.Booking, error) {

	var conflicts []models.Booking
	if err := r.db.WithContext(ctx).
		Where("barber = ? AND start_time < ? AND end_time > ?", barber, end, start).
		Find(&conflicts).Error; err != nil {
		return nil, err
	}
	return conflicts, nil
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) SaveBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Save(b).Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
		return httperr.ErrBusiness(httperr.CodeTimeConflict, "barber already has a booking in that interval")
	}
	return err
}

func (r *BookingGormRepository) DeleteBooking(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, "id = ?", id).Error
}

func (r *BookingGormRepository) ExistsBooking(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingGormRepository) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := r.db.WithContext(ctx).
		Order("start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingGormRepository) ListBookingsByClient(
	ctx context.Context,
	clientName string,
) ([]models.Booking, error) {

	var out []models.Booking
	if err := r.db.WithContext(ctx).
		Where("client_name = ?", clientName).
		Order("start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingGormRepository) ListBookingsByBarber(
	ctx context.Context,
	barber string,
) ([]models.Booking, error) {

	var out []models.Booking
	if err := r.db.WithContext(ctx).
		Where("barber = ?", barber).
		Order("start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
