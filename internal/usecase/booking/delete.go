package booking

import (
	"context"

	domain "github.com/freshcut-app/freshcut-api/internal/domain/booking"
	"github.com/freshcut-app/freshcut-api/internal/httperr"
)

type DeleteBooking struct {
	repo domain.Repository
}

func NewDeleteBooking(repo domain.Repository) *DeleteBooking {
	return &DeleteBooking{repo: repo}
}

func (uc *DeleteBooking) Execute(ctx context.Context, id string) error {
	exists, err := uc.repo.ExistsBooking(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return httperr.ErrBusiness(httperr.CodeNotFound, "booking not found")
	}
	return uc.repo.DeleteBooking(ctx, id)
}
