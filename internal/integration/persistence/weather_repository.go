package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
	"github.com/wardrobe-manager/backend/internal/integration/persistence/model"
)

// weatherRepository implements the adapter.WeatherRepository interface.
type weatherRepository struct {
	db *gorm.DB
}

// NewWeatherRepository creates a new weather repository instance.
func NewWeatherRepository(db *gorm.DB) adapter.WeatherRepository {
	return &weatherRepository{db: db}
}

// Create stores a weather sample.
func (r *weatherRepository) Create(ctx context.Context, sample *entity.WeatherSample) error {
	return conn(ctx, r.db).Create(model.WeatherSampleFromEntity(sample)).Error
}

// FindLatestByLocation returns the most recent sample recorded for a location.
func (r *weatherRepository) FindLatestByLocation(ctx context.Context, location string) (*entity.WeatherSample, error) {
	var sampleModel model.WeatherSampleModel
	result := conn(ctx, r.db).
		Where("location = ?", location).
		Order("date DESC, created_at DESC").
		First(&sampleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrWeatherNotFound
		}
		return nil, result.Error
	}
	return sampleModel.ToEntity(), nil
}
