package dto

import (
	"time"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// RecordWeatherRequest represents the request body for recording a weather sample.
type RecordWeatherRequest struct {
	Location    string     `json:"location" binding:"required,max=255"`
	Conditions  string     `json:"conditions" binding:"required,max=50"`
	Temperature *float64   `json:"temperature,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// WeatherResponse represents a weather sample in API responses.
type WeatherResponse struct {
	ID          string    `json:"id"`
	Location    string    `json:"location"`
	Conditions  string    `json:"conditions"`
	Temperature *float64  `json:"temperature"`
	Date        time.Time `json:"date"`
}

// LatestWeatherResponse adds the derived season to a weather sample.
type LatestWeatherResponse struct {
	WeatherResponse
	Season string `json:"season"`
}

// ToWeatherResponse converts a domain WeatherSample to a WeatherResponse DTO.
func ToWeatherResponse(s *entity.WeatherSample) WeatherResponse {
	return WeatherResponse{
		ID:          s.ID.String(),
		Location:    s.Location,
		Conditions:  s.Conditions,
		Temperature: s.Temperature,
		Date:        s.Date,
	}
}
