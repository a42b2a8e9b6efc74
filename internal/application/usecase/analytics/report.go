// Package analytics contains wardrobe usage analytics use cases.
package analytics

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// Report limits.
const (
	MostUsedLimit           = 5
	DonationSuggestionLimit = 10
)

// UncategorizedKey groups items with no category or type.
const UncategorizedKey = "Uncategorized"

// Totals counts the active items and all outfits of a user.
type Totals struct {
	Clothes     int `json:"clothes"`
	Accessories int `json:"accessories"`
	Outfits     int `json:"outfits"`
}

// UsageLists holds one ranked list per wearable collection.
type UsageLists struct {
	Clothes     []*entity.ClothingItem `json:"clothes"`
	Accessories []*entity.Accessory    `json:"accessories"`
}

// BreakdownEntry is the number of active items sharing one category or type.
type BreakdownEntry struct {
	Key        string  `json:"key"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Breakdown groups clothes by category and accessories by type.
type Breakdown struct {
	Clothes     []BreakdownEntry `json:"clothes"`
	Accessories []BreakdownEntry `json:"accessories"`
}

// Report is the aggregated wardrobe usage of a user.
type Report struct {
	Totals              Totals     `json:"totals"`
	MostUsed            UsageLists `json:"mostUsed"`
	DonationSuggestions UsageLists `json:"donationSuggestions"`
	Breakdown           Breakdown  `json:"breakdown"`
}

// RankMostUsed returns at most limit active items with at least one wear, most worn first.
// Ties keep their input order.
func RankMostUsed[T any](items []T, active func(T) bool, wearCount func(T) int, limit int) []T {
	ranked := make([]T, 0, len(items))
	for _, item := range items {
		if active(item) && wearCount(item) > 0 {
			ranked = append(ranked, item)
		}
	}
	slices.SortStableFunc(ranked, func(a, b T) int {
		return cmp.Compare(wearCount(b), wearCount(a))
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// SelectUnworn returns at most limit active items that were never worn, in input order.
func SelectUnworn[T any](items []T, active func(T) bool, wearCount func(T) int, limit int) []T {
	unworn := make([]T, 0, limit)
	for _, item := range items {
		if len(unworn) == limit {
			break
		}
		if active(item) && wearCount(item) == 0 {
			unworn = append(unworn, item)
		}
	}
	return unworn
}

// GroupBreakdown counts active items per key, largest group first then by key.
// Percentages are relative to the active items and rounded to two decimals.
func GroupBreakdown[T any](items []T, active func(T) bool, key func(T) string) []BreakdownEntry {
	counts := map[string]int{}
	total := 0
	for _, item := range items {
		if !active(item) {
			continue
		}
		k := key(item)
		if k == "" {
			k = UncategorizedKey
		}
		counts[k]++
		total++
	}

	entries := make([]BreakdownEntry, 0, len(counts))
	for k, count := range counts {
		pct := decimal.NewFromInt(int64(count)).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(int64(total)))
		percentage, _ := pct.Round(2).Float64()
		entries = append(entries, BreakdownEntry{Key: k, Count: count, Percentage: percentage})
	}

	slices.SortFunc(entries, func(a, b BreakdownEntry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return entries
}

func clothingActive(c *entity.ClothingItem) bool     { return c.IsActive() }
func clothingWear(c *entity.ClothingItem) int        { return c.WearCount }
func clothingCategory(c *entity.ClothingItem) string { return string(c.Category) }
func accessoryActive(a *entity.Accessory) bool       { return a.IsActive() }
func accessoryWear(a *entity.Accessory) int          { return a.WearCount }
func accessoryType(a *entity.Accessory) string       { return a.Type }
