package booking

import (
	"context"

	domain "github.com/freshcut-app/freshcut-api/internal/domain/booking"
	"github.com/freshcut-app/freshcut-api/internal/httperr"
	"github.com/freshcut-app/freshcut-api/internal/models"
)

type UpdateBooking struct {
	repo  domain.Repository
	locks *domain.BarberLocks
}

func NewUpdateBooking(repo domain.Repository, locks *domain.BarberLocks) *UpdateBooking {
	return &UpdateBooking{repo: repo, locks: locks}
}

func (uc *UpdateBooking) Execute(ctx context.Context, id string, in BookingInput) (*models.Booking, error) {
	existing, err := uc.repo.GetBooking(ctx, id)
	if err != nil || existing == nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound, "booking not found")
	}

	if err := validateInput(in); err != nil {
		return nil, err
	}

	unlock := uc.locks.Lock(in.Barber)
	defer unlock()

	slot, err := resolveSlot(ctx, uc.repo, in, existing.ID)
	if err != nil {
		return nil, err
	}

	existing.ClientName = in.ClientName
	existing.Barber = in.Barber
	existing.BarberID = slot.barber.ID
	existing.Service = in.Service
	existing.StartTime = slot.start
	existing.EndTime = slot.end
	existing.PriceCents = slot.service.PriceCents

	if err := uc.repo.SaveBooking(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}
