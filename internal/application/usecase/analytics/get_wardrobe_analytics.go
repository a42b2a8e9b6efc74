// Package analytics contains wardrobe usage analytics use cases.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
)

// Sub-metric names used in logs and metrics.
const (
	MetricTotalClothes         = "totals.clothes"
	MetricTotalAccessories     = "totals.accessories"
	MetricTotalOutfits         = "totals.outfits"
	MetricMostUsedClothes      = "mostUsed.clothes"
	MetricMostUsedAccessories  = "mostUsed.accessories"
	MetricDonationClothes      = "donationSuggestions.clothes"
	MetricDonationAccessories  = "donationSuggestions.accessories"
	MetricBreakdownClothes     = "breakdown.clothes"
	MetricBreakdownAccessories = "breakdown.accessories"
)

// GetWardrobeAnalyticsInput represents the input for wardrobe analytics.
type GetWardrobeAnalyticsInput struct {
	UserID uuid.UUID
}

// GetWardrobeAnalyticsOutput represents the wardrobe analytics report.
type GetWardrobeAnalyticsOutput struct {
	Report
	Cached   bool
	Failures []string // Sub-metrics that degraded to their empty value
}

// result holds the outcome of one sub-metric.
type result[T any] struct {
	value T
	err   error
}

// or returns the value, or empty when the sub-metric failed.
func (r result[T]) or(empty T) T {
	if r.err != nil {
		return empty
	}
	return r.value
}

// GetWardrobeAnalyticsUseCase aggregates usage across a user's wardrobe.
// Each sub-metric runs its own query concurrently; a failing one degrades to an empty value.
type GetWardrobeAnalyticsUseCase struct {
	clothingRepo  adapter.ClothingRepository
	accessoryRepo adapter.AccessoryRepository
	outfitRepo    adapter.OutfitRepository
	cache         adapter.AnalyticsCache
	metrics       adapter.UsageMetrics
}

// NewGetWardrobeAnalyticsUseCase creates a new GetWardrobeAnalyticsUseCase instance.
// cache and metrics may be nil.
func NewGetWardrobeAnalyticsUseCase(
	clothingRepo adapter.ClothingRepository,
	accessoryRepo adapter.AccessoryRepository,
	outfitRepo adapter.OutfitRepository,
	cache adapter.AnalyticsCache,
	metrics adapter.UsageMetrics,
) *GetWardrobeAnalyticsUseCase {
	return &GetWardrobeAnalyticsUseCase{
		clothingRepo:  clothingRepo,
		accessoryRepo: accessoryRepo,
		outfitRepo:    outfitRepo,
		cache:         cache,
		metrics:       metrics,
	}
}

// Execute builds the report. It never fails because of a sub-metric.
func (uc *GetWardrobeAnalyticsUseCase) Execute(ctx context.Context, input GetWardrobeAnalyticsInput) (*GetWardrobeAnalyticsOutput, error) {
	if cached, ok := uc.fromCache(ctx, input.UserID); ok {
		return &GetWardrobeAnalyticsOutput{Report: *cached, Cached: true}, nil
	}

	userID := input.UserID
	var (
		wg                                   sync.WaitGroup
		totalClothes, totalAcc, totalOutfits result[int]
		mostUsedClothes, donationClothes     result[[]*entity.ClothingItem]
		mostUsedAcc, donationAcc             result[[]*entity.Accessory]
		breakdownClothes, breakdownAcc       result[[]BreakdownEntry]
	)

	run(&wg, &totalClothes, func() (int, error) {
		return uc.clothingRepo.CountActiveByUser(ctx, userID)
	})
	run(&wg, &totalAcc, func() (int, error) {
		return uc.accessoryRepo.CountActiveByUser(ctx, userID)
	})
	run(&wg, &totalOutfits, func() (int, error) {
		return uc.outfitRepo.CountByUser(ctx, userID)
	})
	run(&wg, &mostUsedClothes, func() ([]*entity.ClothingItem, error) {
		items, err := uc.clothingRepo.FindActiveByUser(ctx, userID, "")
		return RankMostUsed(items, clothingActive, clothingWear, MostUsedLimit), err
	})
	run(&wg, &mostUsedAcc, func() ([]*entity.Accessory, error) {
		items, err := uc.accessoryRepo.FindActiveByUser(ctx, userID)
		return RankMostUsed(items, accessoryActive, accessoryWear, MostUsedLimit), err
	})
	run(&wg, &donationClothes, func() ([]*entity.ClothingItem, error) {
		items, err := uc.clothingRepo.FindActiveByUser(ctx, userID, "")
		return SelectUnworn(items, clothingActive, clothingWear, DonationSuggestionLimit), err
	})
	run(&wg, &donationAcc, func() ([]*entity.Accessory, error) {
		items, err := uc.accessoryRepo.FindActiveByUser(ctx, userID)
		return SelectUnworn(items, accessoryActive, accessoryWear, DonationSuggestionLimit), err
	})
	run(&wg, &breakdownClothes, func() ([]BreakdownEntry, error) {
		items, err := uc.clothingRepo.FindActiveByUser(ctx, userID, "")
		return GroupBreakdown(items, clothingActive, clothingCategory), err
	})
	run(&wg, &breakdownAcc, func() ([]BreakdownEntry, error) {
		items, err := uc.accessoryRepo.FindActiveByUser(ctx, userID)
		return GroupBreakdown(items, accessoryActive, accessoryType), err
	})

	wg.Wait()

	output := &GetWardrobeAnalyticsOutput{}
	failed := func(metric string, err error) {
		if err == nil {
			return
		}
		output.Failures = append(output.Failures, metric)
		uc.recordFailure(userID, metric, err)
	}
	failed(MetricTotalClothes, totalClothes.err)
	failed(MetricTotalAccessories, totalAcc.err)
	failed(MetricTotalOutfits, totalOutfits.err)
	failed(MetricMostUsedClothes, mostUsedClothes.err)
	failed(MetricMostUsedAccessories, mostUsedAcc.err)
	failed(MetricDonationClothes, donationClothes.err)
	failed(MetricDonationAccessories, donationAcc.err)
	failed(MetricBreakdownClothes, breakdownClothes.err)
	failed(MetricBreakdownAccessories, breakdownAcc.err)

	output.Report = Report{
		Totals: Totals{
			Clothes:     totalClothes.or(0),
			Accessories: totalAcc.or(0),
			Outfits:     totalOutfits.or(0),
		},
		MostUsed: UsageLists{
			Clothes:     mostUsedClothes.or([]*entity.ClothingItem{}),
			Accessories: mostUsedAcc.or([]*entity.Accessory{}),
		},
		DonationSuggestions: UsageLists{
			Clothes:     donationClothes.or([]*entity.ClothingItem{}),
			Accessories: donationAcc.or([]*entity.Accessory{}),
		},
		Breakdown: Breakdown{
			Clothes:     breakdownClothes.or([]BreakdownEntry{}),
			Accessories: breakdownAcc.or([]BreakdownEntry{}),
		},
	}

	// Degraded reports are not cached
	if len(output.Failures) == 0 {
		uc.toCache(ctx, userID, &output.Report)
	}

	return output, nil
}

// run computes one sub-metric in its own goroutine.
func run[T any](wg *sync.WaitGroup, dst *result[T], compute func() (T, error)) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				dst.err = fmt.Errorf("panic: %v", r)
			}
		}()
		value, err := compute()
		*dst = result[T]{value: value, err: err}
	}()
}

func (uc *GetWardrobeAnalyticsUseCase) recordFailure(userID uuid.UUID, metric string, err error) {
	slog.Warn("Analytics sub-metric failed",
		"user_id", userID,
		"metric", metric,
		"error", fmt.Errorf("%w: %w", domainerror.ErrPartialAggregation, err),
	)
	if uc.metrics != nil {
		uc.metrics.ObserveAggregationFailure(metric)
	}
}

func (uc *GetWardrobeAnalyticsUseCase) fromCache(ctx context.Context, userID uuid.UUID) (*Report, bool) {
	if uc.cache == nil {
		return nil, false
	}
	data, ok, err := uc.cache.Get(ctx, userID)
	if err != nil {
		slog.Warn("Failed to read analytics cache", "user_id", userID, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		slog.Warn("Discarding unreadable analytics cache entry", "user_id", userID, "error", err)
		return nil, false
	}
	return &report, true
}

func (uc *GetWardrobeAnalyticsUseCase) toCache(ctx context.Context, userID uuid.UUID, report *Report) {
	if uc.cache == nil {
		return
	}
	data, err := json.Marshal(report)
	if err != nil {
		slog.Warn("Failed to encode analytics report", "user_id", userID, "error", err)
		return
	}
	if err := uc.cache.Set(ctx, userID, data); err != nil {
		slog.Warn("Failed to write analytics cache", "user_id", userID, "error", err)
	}
}
