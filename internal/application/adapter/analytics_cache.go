// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// AnalyticsCache stores serialized analytics reports per user.
type AnalyticsCache interface {
	// Get returns the cached report and whether it was present.
	Get(ctx context.Context, userID uuid.UUID) ([]byte, bool, error)

	// Set stores a report for the user.
	Set(ctx context.Context, userID uuid.UUID, report []byte) error

	// Invalidate drops the cached report for the user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// InvalidateAnalytics drops the cached report of the user after a wardrobe write.
// A nil cache is a no-op and failures are logged only.
func InvalidateAnalytics(ctx context.Context, cache AnalyticsCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate analytics cache",
			"user_id", userID,
			"error", err,
		)
	}
}
