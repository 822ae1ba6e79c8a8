package booking

import (
	"context"
	"strings"
	"time"

	domain "github.com/freshcut-app/freshcut-api/internal/domain/booking"
	"github.com/freshcut-app/freshcut-api/internal/httperr"
	"github.com/freshcut-app/freshcut-api/internal/models"
)

type CreateBooking struct {
	repo  domain.Repository
	locks *domain.BarberLocks
}

func NewCreateBooking(repo domain.Repository, locks *domain.BarberLocks) *CreateBooking {
	return &CreateBooking{repo: repo, locks: locks}
}

func (uc *CreateBooking) Execute(ctx context.Context, in BookingInput) (*models.Booking, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	// Serialize check-then-insert per barber so two concurrent requests for
	// the same slot cannot both pass the overlap check.
	unlock := uc.locks.Lock(in.Barber)
	defer unlock()

	slot, err := resolveSlot(ctx, uc.repo, in, "")
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		ClientName: in.ClientName,
		Barber:     in.Barber,
		BarberID:   slot.barber.ID,
		Service:    in.Service,
		StartTime:  slot.start,
		EndTime:    slot.end,
		PriceCents: slot.service.PriceCents,
		Status:     string(domain.InitialStatus()),
	}

	if err := uc.repo.SaveBooking(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// resolvedSlot is the outcome of steps 2-6 of the create flow, shared with
// update.
type resolvedSlot struct {
	service *models.ServiceItem
	barber  *models.Barber
	start   time.Time
	end     time.Time
}

func validateInput(in BookingInput) error {
	if in.StartTime == nil {
		return httperr.ErrBusiness(httperr.CodeValidation, "start time is required")
	}
	if strings.TrimSpace(in.ClientName) == "" ||
		strings.TrimSpace(in.Barber) == "" ||
		strings.TrimSpace(in.Service) == "" {
		return httperr.ErrBusiness(httperr.CodeValidation, "clientName, barber and service are required")
	}
	return nil
}

// resolveSlot resolves the service and barber among active entries, computes
// the end from the service duration, and runs the overlap and availability
// checks. excludeID removes a booking's own row from the conflict set so an
// update never conflicts with itself.
func resolveSlot(ctx context.Context, repo domain.Repository, in BookingInput, excludeID string) (*resolvedSlot, error) {
	service, err := repo.FindActiveServiceByName(ctx, in.Service)
	if err != nil || service == nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidReference, "service is invalid or inactive")
	}

	start := *in.StartTime
	end := start.Add(time.Duration(service.DurationMinutes) * time.Minute)

	// Every stored booking blocks the slot, cancelled ones included.
	conflicts, err := repo.FindOverlapping(ctx, in.Barber, end, start)
	if err != nil {
		return nil, err
	}
	for _, c := range conflicts {
		if c.ID != excludeID {
			return nil, httperr.ErrBusiness(httperr.CodeTimeConflict, "barber already has a booking in that interval")
		}
	}

	barber, err := repo.FindActiveBarberByName(ctx, in.Barber)
	if err != nil || barber == nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidReference, "barber is invalid or inactive")
	}

	windows, err := repo.FindSchedules(ctx, barber.ID, start.Weekday())
	if err != nil {
		return nil, err
	}
	if !domain.FitsSchedule(windows, start, end) {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideSchedule, "requested slot is outside the barber's availability")
	}

	return &resolvedSlot{service: service, barber: barber, start: start, end: end}, nil
}
