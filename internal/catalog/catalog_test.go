package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/freshcut-app/freshcut-api/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListActiveBarbers(ctx context.Context) ([]models.Barber, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Barber), args.Error(1)
}

func (m *MockRepository) ListActiveServices(ctx context.Context) ([]models.ServiceItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ServiceItem), args.Error(1)
}

func TestListActiveBarbers_SecondReadHitsCache(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	barbers := []models.Barber{{ID: "b1", Name: "Ana", Active: true}}
	repo.On("ListActiveBarbers", mock.Anything).Return(barbers, nil).Once()

	got, err := svc.ListActiveBarbers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, barbers, got)

	// Served from cache: the repository must not be hit again.
	got, err = svc.ListActiveBarbers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, barbers, got)
	repo.AssertExpectations(t)
}

func TestInvalidate_ForcesFreshRead(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	services := []models.ServiceItem{{ID: "s1", Name: "Barba", Active: true}}
	repo.On("ListActiveServices", mock.Anything).Return(services, nil).Twice()

	_, err := svc.ListActiveServices(context.Background())
	require.NoError(t, err)

	svc.Invalidate()

	_, err = svc.ListActiveServices(context.Background())
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListActiveServices_ErrorNotCached(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("ListActiveServices", mock.Anything).Return([]models.ServiceItem(nil), assert.AnError).Once()

	_, err := svc.ListActiveServices(context.Background())
	assert.Error(t, err)

	services := []models.ServiceItem{{ID: "s1", Name: "Barba", Active: true}}
	repo.On("ListActiveServices", mock.Anything).Return(services, nil).Once()

	got, err := svc.ListActiveServices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, services, got)
}
