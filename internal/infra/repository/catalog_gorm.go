package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/freshcut-app/freshcut-api/internal/catalog"
	"github.com/freshcut-app/freshcut-api/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) ListActiveBarbers(ctx context.Context) ([]models.Barber, error) {
	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *CatalogGormRepository) ListActiveServices(ctx context.Context) ([]models.ServiceItem, error) {
	var services []models.ServiceItem
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

var _ catalog.Repository = (*CatalogGormRepository)(nil)
