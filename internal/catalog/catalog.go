package catalog

import (
	"context"
	"time"

	"github.com/freshcut-app/freshcut-api/internal/cache"
	"github.com/freshcut-app/freshcut-api/internal/models"
)

const (
	keyBarbers  = "barbers"
	keyServices = "services"

	defaultSize = 2
	defaultTTL  = time.Minute
)

// Repository is the read contract behind the cached catalog.
type Repository interface {
	ListActiveBarbers(ctx context.Context) ([]models.Barber, error)
	ListActiveServices(ctx context.Context) ([]models.ServiceItem, error)
}

// Service serves the active-only catalog projections through two small
// TTL caches. Admin mutation paths do not call Invalidate, so edits can be
// served stale for up to one TTL; accepted for the write frequency here.
type Service struct {
	repo     Repository
	barbers  *cache.LRU
	services *cache.LRU
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		barbers:  cache.NewLRU(defaultSize, defaultTTL),
		services: cache.NewLRU(defaultSize, defaultTTL),
	}
}

func (s *Service) ListActiveBarbers(ctx context.Context) ([]models.Barber, error) {
	if v, ok := s.barbers.Get(keyBarbers); ok {
		return v.([]models.Barber), nil
	}

	fresh, err := s.repo.ListActiveBarbers(ctx)
	if err != nil {
		return nil, err
	}
	s.barbers.Put(keyBarbers, fresh)
	return fresh, nil
}

func (s *Service) ListActiveServices(ctx context.Context) ([]models.ServiceItem, error) {
	if v, ok := s.services.Get(keyServices); ok {
		return v.([]models.ServiceItem), nil
	}

	fresh, err := s.repo.ListActiveServices(ctx)
	if err != nil {
		return nil, err
	}
	s.services.Put(keyServices, fresh)
	return fresh, nil
}

func (s *Service) Invalidate() {
	s.barbers.Clear()
	s.services.Clear()
}
