// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "github.com/wardrobe-manager/backend/internal/domain/entity"

// UsageMetrics receives observability signals from the recommendation engine.
type UsageMetrics interface {
	// ObserveWearEvents counts wear events applied to a collection.
	ObserveWearEvents(kind entity.ItemKind, count int)

	// ObserveOutfitGenerated counts outfit generation attempts by result.
	ObserveOutfitGenerated(result string)

	// ObserveAggregationFailure counts an analytics sub-metric that degraded to its empty value.
	ObserveAggregationFailure(metric string)
}
