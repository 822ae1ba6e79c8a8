package booking

import (
	"context"

	domain "github.com/freshcut-app/freshcut-api/internal/domain/booking"
	"github.com/freshcut-app/freshcut-api/internal/httperr"
	"github.com/freshcut-app/freshcut-api/internal/models"
)

// ListBookings covers the read side: plain table scans at this scale.
type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) All(ctx context.Context) ([]models.Booking, error) {
	return uc.repo.ListBookings(ctx)
}

func (uc *ListBookings) ByClient(ctx context.Context, clientName string) ([]models.Booking, error) {
	return uc.repo.ListBookingsByClient(ctx, clientName)
}

func (uc *ListBookings) ByBarber(ctx context.Context, barber string) ([]models.Booking, error) {
	return uc.repo.ListBookingsByBarber(ctx, barber)
}

func (uc *ListBookings) One(ctx context.Context, id string) (*models.Booking, error) {
	b, err := uc.repo.GetBooking(ctx, id)
	if err != nil || b == nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound, "booking not found")
	}
	return b, nil
}
