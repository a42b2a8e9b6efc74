// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Well-known weather conditions. Any other string is accepted as-is.
const (
	WeatherConditionHot   = "hot"
	WeatherConditionSunny = "sunny"
	WeatherConditionCold  = "cold"
	WeatherConditionRainy = "rainy"
)

// WeatherSample represents an observed weather condition for a location.
type WeatherSample struct {
	ID          uuid.UUID
	Location    string
	Conditions  string
	Temperature *float64
	Date        time.Time
	CreatedAt   time.Time
}

// NewWeatherSample creates a new WeatherSample entity.
func NewWeatherSample(location, conditions string, temperature *float64, date time.Time) *WeatherSample {
	return &WeatherSample{
		ID:          uuid.New(),
		Location:    location,
		Conditions:  conditions,
		Temperature: temperature,
		Date:        date.UTC(),
		CreatedAt:   time.Now().UTC(),
	}
}
