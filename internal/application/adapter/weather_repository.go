// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// WeatherRepository defines the interface for weather sample persistence operations.
type WeatherRepository interface {
	// Create stores a new weather sample.
	Create(ctx context.Context, sample *entity.WeatherSample) error

	// FindLatestByLocation retrieves the most recent sample for a location.
	// Returns domainerror.ErrWeatherNotFound when the location has no samples.
	FindLatestByLocation(ctx context.Context, location string) (*entity.WeatherSample, error)
}
