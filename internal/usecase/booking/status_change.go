package booking

import (
	"context"

	domain "github.com/freshcut-app/freshcut-api/internal/domain/booking"
	"github.com/freshcut-app/freshcut-api/internal/httperr"
	"github.com/freshcut-app/freshcut-api/internal/models"
)

// CancelBooking and CompleteBooking mutate status only. Both are idempotent
// and neither guards the current state: a cancelled booking can be forced
// to completed and vice versa (preserved original behavior, see DESIGN.md).

type CancelBooking struct {
	repo domain.Repository
}

func NewCancelBooking(repo domain.Repository) *CancelBooking {
	return &CancelBooking{repo: repo}
}

func (uc *CancelBooking) Execute(ctx context.Context, id string) (*models.Booking, error) {
	return setStatus(ctx, uc.repo, id, domain.StatusCancelled)
}

type CompleteBooking struct {
	repo domain.Repository
}

func NewCompleteBooking(repo domain.Repository) *CompleteBooking {
	return &CompleteBooking{repo: repo}
}

func (uc *CompleteBooking) Execute(ctx context.Context, id string) (*models.Booking, error) {
	return setStatus(ctx, uc.repo, id, domain.StatusCompleted)
}

func setStatus(ctx context.Context, repo domain.Repository, id string, status domain.Status) (*models.Booking, error) {
	b, err := repo.GetBooking(ctx, id)
	if err != nil || b == nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound, "booking not found")
	}

	b.Status = string(status)
	if err := repo.SaveBooking(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
