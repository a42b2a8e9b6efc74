// Package weather contains weather sample use cases.
package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
	"github.com/wardrobe-manager/backend/internal/domain/valueobject"
)

// GetLatestWeatherInput represents the input for the latest weather lookup.
type GetLatestWeatherInput struct {
	Location string
}

// GetLatestWeatherOutput represents the latest sample and the season it maps to.
type GetLatestWeatherOutput struct {
	Sample *entity.WeatherSample
	Season valueobject.Season
}

// GetLatestWeatherUseCase returns the most recent weather sample for a location.
type GetLatestWeatherUseCase struct {
	weatherRepo adapter.WeatherRepository
}

// NewGetLatestWeatherUseCase creates a new GetLatestWeatherUseCase instance.
func NewGetLatestWeatherUseCase(weatherRepo adapter.WeatherRepository) *GetLatestWeatherUseCase {
	return &GetLatestWeatherUseCase{
		weatherRepo: weatherRepo,
	}
}

// Execute performs the lookup.
func (uc *GetLatestWeatherUseCase) Execute(ctx context.Context, input GetLatestWeatherInput) (*GetLatestWeatherOutput, error) {
	location := strings.TrimSpace(input.Location)
	if location == "" {
		return nil, domainerror.NewWeatherError(
			domainerror.ErrCodeMissingWeatherFields,
			"location is required",
			domainerror.ErrMissingWeatherFields,
		)
	}

	sample, err := uc.weatherRepo.FindLatestByLocation(ctx, location)
	if err != nil {
		if errors.Is(err, domainerror.ErrWeatherNotFound) {
			return nil, domainerror.NewWeatherError(
				domainerror.ErrCodeWeatherNotFound,
				"weather data not found for location",
				domainerror.ErrWeatherNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find weather: %w", err)
	}

	return &GetLatestWeatherOutput{
		Sample: sample,
		Season: valueobject.ClassifySeason(sample.Conditions),
	}, nil
}
