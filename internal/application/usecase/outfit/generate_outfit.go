// Package outfit contains outfit recommendation and outfit management use cases.
package outfit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
	"github.com/wardrobe-manager/backend/internal/domain/valueobject"
)

// GeneratedOutfitNamePrefix prefixes the display name of generated outfits.
const GeneratedOutfitNamePrefix = "Generated Outfit - "

// Outfit generation results reported to metrics.
const (
	GenerationResultCreated      = "created"
	GenerationResultInsufficient = "insufficient_wardrobe"
	GenerationResultFailed       = "failed"
)

// GenerateOutfitInput represents the input for outfit generation.
type GenerateOutfitInput struct {
	UserID   uuid.UUID
	Location string // Optional, defaults to the user's stored location
}

// GenerateOutfitOutput represents the output of outfit generation.
type GenerateOutfitOutput struct {
	Outfit  *entity.Outfit
	Weather *entity.WeatherSample
	Season  valueobject.Season
}

// GenerateOutfitUseCase picks a weather and laundry aware outfit and records its wear.
type GenerateOutfitUseCase struct {
	userRepo      adapter.UserRepository
	weatherRepo   adapter.WeatherRepository
	clothingRepo  adapter.ClothingRepository
	accessoryRepo adapter.AccessoryRepository
	laundryRepo   adapter.LaundryRepository
	outfitRepo    adapter.OutfitRepository
	transactor    adapter.Transactor
	selector      *Selector
	tracker       *UsageTracker
	clock         adapter.Clock
	cache         adapter.AnalyticsCache
	metrics       adapter.UsageMetrics
}

// GenerateOutfitDeps groups the collaborators of GenerateOutfitUseCase.
// Cache and Metrics are optional.
type GenerateOutfitDeps struct {
	UserRepo      adapter.UserRepository
	WeatherRepo   adapter.WeatherRepository
	ClothingRepo  adapter.ClothingRepository
	AccessoryRepo adapter.AccessoryRepository
	LaundryRepo   adapter.LaundryRepository
	OutfitRepo    adapter.OutfitRepository
	Transactor    adapter.Transactor
	Selector      *Selector
	Tracker       *UsageTracker
	Clock         adapter.Clock
	Cache         adapter.AnalyticsCache
	Metrics       adapter.UsageMetrics
}

// NewGenerateOutfitUseCase creates a new GenerateOutfitUseCase instance.
func NewGenerateOutfitUseCase(deps GenerateOutfitDeps) *GenerateOutfitUseCase {
	return &GenerateOutfitUseCase{
		userRepo:      deps.UserRepo,
		weatherRepo:   deps.WeatherRepo,
		clothingRepo:  deps.ClothingRepo,
		accessoryRepo: deps.AccessoryRepo,
		laundryRepo:   deps.LaundryRepo,
		outfitRepo:    deps.OutfitRepo,
		transactor:    deps.Transactor,
		selector:      deps.Selector,
		tracker:       deps.Tracker,
		clock:         deps.Clock,
		cache:         deps.Cache,
		metrics:       deps.Metrics,
	}
}

// Execute generates an outfit for the user's location.
// The outfit and the wear of its items are written together or not at all.
func (uc *GenerateOutfitUseCase) Execute(ctx context.Context, input GenerateOutfitInput) (*GenerateOutfitOutput, error) {
	output, err := uc.generate(ctx, input)
	switch {
	case err == nil:
		uc.observe(GenerationResultCreated)
	case errors.Is(err, domainerror.ErrInsufficientWardrobe):
		uc.observe(GenerationResultInsufficient)
	default:
		uc.observe(GenerationResultFailed)
	}
	return output, err
}

func (uc *GenerateOutfitUseCase) generate(ctx context.Context, input GenerateOutfitInput) (*GenerateOutfitOutput, error) {
	// Resolve the user and their location
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewOutfitError(
				domainerror.ErrCodeOutfitUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, unavailable("failed to find user", err)
	}

	location := strings.TrimSpace(input.Location)
	if location == "" {
		location = user.Location
	}
	if location == "" {
		return nil, domainerror.NewOutfitError(
			domainerror.ErrCodeLocationRequired,
			"location is required to generate an outfit",
			domainerror.ErrLocationRequired,
		)
	}

	// Latest weather for the location
	weather, err := uc.weatherRepo.FindLatestByLocation(ctx, location)
	if err != nil {
		if errors.Is(err, domainerror.ErrWeatherNotFound) {
			return nil, domainerror.NewOutfitError(
				domainerror.ErrCodeOutfitWeatherMissing,
				"weather data not found for user location",
				domainerror.ErrWeatherNotFound,
			)
		}
		return nil, unavailable("failed to find weather", err)
	}

	season := valueobject.ClassifySeason(weather.Conditions)
	seasonFilter := ""
	if season != valueobject.SeasonAll {
		seasonFilter = string(season)
	}

	// Eligible pools
	clothing, err := uc.clothingRepo.FindActiveByUser(ctx, input.UserID, seasonFilter)
	if err != nil {
		return nil, unavailable("failed to list clothing", err)
	}

	laundry, err := uc.laundryRepo.FindOpenByUser(ctx, input.UserID)
	if err != nil {
		return nil, unavailable("failed to list laundry", err)
	}

	accessories, err := uc.accessoryRepo.FindActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, unavailable("failed to list accessories", err)
	}

	selection, err := uc.selector.Select(
		FilterEligibleClothing(clothing, laundry, season),
		FilterEligibleAccessories(accessories),
	)
	if err != nil {
		return nil, err
	}

	// The outfit and its wear events commit together
	now := uc.clock.Now().UTC()
	outfit := entity.NewOutfit(
		input.UserID,
		GeneratedOutfitName(now),
		selection.ClothingIDs(),
		selection.AccessoryIDs(),
		weather.Conditions,
		1,
	)
	outfit.CreatedAt = now
	outfit.UpdatedAt = now

	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.outfitRepo.Create(ctx, outfit); err != nil {
			return unavailable("failed to create outfit", err)
		}
		if err := uc.tracker.MarkWorn(ctx, outfit.ClothingItems, outfit.Accessories, now); err != nil {
			return unavailable("failed to record wear", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrRepositoryUnavailable) {
			return nil, err
		}
		return nil, unavailable("failed to commit outfit", err)
	}

	uc.tracker.Observe(outfit.ClothingItems, outfit.Accessories)
	adapter.InvalidateAnalytics(ctx, uc.cache, input.UserID)

	return &GenerateOutfitOutput{
		Outfit:  outfit,
		Weather: weather,
		Season:  season,
	}, nil
}

func (uc *GenerateOutfitUseCase) observe(result string) {
	if uc.metrics != nil {
		uc.metrics.ObserveOutfitGenerated(result)
	}
}

// GeneratedOutfitName builds the display name of an outfit generated at t.
func GeneratedOutfitName(t time.Time) string {
	return GeneratedOutfitNamePrefix + t.Format("2006-01-02")
}

// unavailable wraps a store failure as a RepositoryUnavailable outfit error.
func unavailable(message string, err error) error {
	return domainerror.NewOutfitError(
		domainerror.ErrCodeRepositoryUnavailable,
		message,
		fmt.Errorf("%w: %w", domainerror.ErrRepositoryUnavailable, err),
	)
}
