// Package error defines domain-specific errors for the Wardrobe Manager application.
package error

import "errors"

// Weather domain errors.
var (
	// ErrWeatherNotFound is returned when no weather sample exists for a location.
	ErrWeatherNotFound = errors.New("weather data not found for location")

	// ErrMissingWeatherFields is returned when a weather sample lacks location or conditions.
	ErrMissingWeatherFields = errors.New("location and conditions are required")
)

// WeatherErrorCode defines error codes for weather errors.
// Format: WTH-XXYYYY where XX is category and YYYY is specific error.
type WeatherErrorCode string

const (
	ErrCodeMissingWeatherFields WeatherErrorCode = "WTH-010001"
	ErrCodeWeatherNotFound      WeatherErrorCode = "WTH-020001"
)

// WeatherError represents a weather error with code and message.
type WeatherError struct {
	Code    WeatherErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WeatherError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WeatherError) Unwrap() error {
	return e.Err
}

// NewWeatherError creates a new WeatherError with the given code and message.
func NewWeatherError(code WeatherErrorCode, message string, err error) *WeatherError {
	return &WeatherError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
