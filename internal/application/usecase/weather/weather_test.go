package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
	"github.com/wardrobe-manager/backend/internal/domain/valueobject"
)

type memoryWeatherRepo struct {
	samples []*entity.WeatherSample
}

func (r *memoryWeatherRepo) Create(_ context.Context, s *entity.WeatherSample) error {
	r.samples = append(r.samples, s)
	return nil
}

func (r *memoryWeatherRepo) FindLatestByLocation(_ context.Context, location string) (*entity.WeatherSample, error) {
	var latest *entity.WeatherSample
	for _, s := range r.samples {
		if s.Location == location && (latest == nil || s.Date.After(latest.Date)) {
			latest = s
		}
	}
	if latest == nil {
		return nil, domainerror.ErrWeatherNotFound
	}
	return latest, nil
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func TestWeatherUseCases(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	repo := &memoryWeatherRepo{}
	record := NewRecordWeatherUseCase(repo, fixedClock(now))
	latest := NewGetLatestWeatherUseCase(repo)

	yesterday := now.AddDate(0, 0, -1)
	if _, err := record.Execute(ctx, RecordWeatherInput{Location: "Oslo", Conditions: "cold", Date: &yesterday}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := record.Execute(ctx, RecordWeatherInput{Location: " Oslo ", Conditions: "Rainy"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output, err := latest.Execute(ctx, GetLatestWeatherInput{Location: "Oslo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Sample.Conditions != "Rainy" || !output.Sample.Date.Equal(now) {
		t.Errorf("expected today's sample, got %s at %v", output.Sample.Conditions, output.Sample.Date)
	}
	if output.Season != valueobject.SeasonRainy {
		t.Errorf("expected rainy season, got %s", output.Season)
	}

	if _, err := latest.Execute(ctx, GetLatestWeatherInput{Location: "Lima"}); !errors.Is(err, domainerror.ErrWeatherNotFound) {
		t.Errorf("expected ErrWeatherNotFound, got %v", err)
	}
	if _, err := record.Execute(ctx, RecordWeatherInput{Location: "Oslo"}); !errors.Is(err, domainerror.ErrMissingWeatherFields) {
		t.Errorf("expected ErrMissingWeatherFields, got %v", err)
	}
	if _, err := latest.Execute(ctx, GetLatestWeatherInput{}); !errors.Is(err, domainerror.ErrMissingWeatherFields) {
		t.Errorf("expected ErrMissingWeatherFields, got %v", err)
	}
}
