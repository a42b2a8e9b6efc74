package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// WeatherSampleModel represents the weather_samples table in the database.
type WeatherSampleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Location    string    `gorm:"type:varchar(255);not null;index:idx_weather_location_date"`
	Conditions  string    `gorm:"type:varchar(50);not null"`
	Temperature *float64
	Date        time.Time `gorm:"not null;index:idx_weather_location_date"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the WeatherSampleModel.
func (WeatherSampleModel) TableName() string {
	return "weather_samples"
}

// ToEntity converts a WeatherSampleModel to a domain WeatherSample entity.
func (m *WeatherSampleModel) ToEntity() *entity.WeatherSample {
	return &entity.WeatherSample{
		ID:          m.ID,
		Location:    m.Location,
		Conditions:  m.Conditions,
		Temperature: m.Temperature,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
	}
}

// WeatherSampleFromEntity creates a WeatherSampleModel from a domain WeatherSample entity.
func WeatherSampleFromEntity(sample *entity.WeatherSample) *WeatherSampleModel {
	return &WeatherSampleModel{
		ID:          sample.ID,
		Location:    sample.Location,
		Conditions:  sample.Conditions,
		Temperature: sample.Temperature,
		Date:        sample.Date,
		CreatedAt:   sample.CreatedAt,
	}
}
