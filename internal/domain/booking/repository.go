package booking

import (
	"context"
	"time"

	"github.com/freshcut-app/freshcut-api/internal/models"
)

// Repository is the persistence contract the booking engine consumes. The
// store is treated as an external collaborator: upserts by id plus the
// handful of derived lookups below.
type Repository interface {
	// -------- Catalog lookups (active-only) --------
	FindActiveServiceByName(ctx context.Context, name string) (*models.ServiceItem, error)
	FindActiveBarberByName(ctx context.Context, name string) (*models.Barber, error)

	// -------- Availability --------
	FindSchedules(ctx context.Context, barberID string, day time.Weekday) ([]models.Schedule, error)

	// -------- Bookings --------

	// FindOverlapping returns every stored booking for the barber name whose
	// interval intersects [start, end) under half-open semantics
	// (existing.start < end AND existing.end > start), regardless of status.
	FindOverlapping(ctx context.Context, barber string, end, start time.Time) ([]models.Booking, error)

	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	SaveBooking(ctx context.Context, b *models.Booking) error
	DeleteBooking(ctx context.Context, id string) error
	ExistsBooking(ctx context.Context, id string) (bool, error)

	ListBookings(ctx context.Context) ([]models.Booking, error)
	ListBookingsByClient(ctx context.Context, clientName string) ([]models.Booking, error)
	ListBookingsByBarber(ctx context.Context, barber string) ([]models.Booking, error)
}
