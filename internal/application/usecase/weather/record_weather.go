// Package weather contains weather sample use cases.
package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
)

// RecordWeatherInput represents the input for recording a weather sample.
type RecordWeatherInput struct {
	Location    string
	Conditions  string
	Temperature *float64
	Date        *time.Time // Optional, defaults to now
}

// RecordWeatherOutput represents the output of recording a weather sample.
type RecordWeatherOutput struct {
	Sample *entity.WeatherSample
}

// RecordWeatherUseCase stores an observed weather condition for a location.
type RecordWeatherUseCase struct {
	weatherRepo adapter.WeatherRepository
	clock       adapter.Clock
}

// NewRecordWeatherUseCase creates a new RecordWeatherUseCase instance.
func NewRecordWeatherUseCase(weatherRepo adapter.WeatherRepository, clock adapter.Clock) *RecordWeatherUseCase {
	return &RecordWeatherUseCase{
		weatherRepo: weatherRepo,
		clock:       clock,
	}
}

// Execute records the sample.
func (uc *RecordWeatherUseCase) Execute(ctx context.Context, input RecordWeatherInput) (*RecordWeatherOutput, error) {
	location := strings.TrimSpace(input.Location)
	conditions := strings.TrimSpace(input.Conditions)
	if location == "" || conditions == "" {
		return nil, domainerror.NewWeatherError(
			domainerror.ErrCodeMissingWeatherFields,
			"location and conditions are required",
			domainerror.ErrMissingWeatherFields,
		)
	}

	date := uc.clock.Now()
	if input.Date != nil {
		date = *input.Date
	}

	sample := entity.NewWeatherSample(location, conditions, input.Temperature, date)

	if err := uc.weatherRepo.Create(ctx, sample); err != nil {
		return nil, fmt.Errorf("failed to record weather: %w", err)
	}

	return &RecordWeatherOutput{
		Sample: sample,
	}, nil
}
