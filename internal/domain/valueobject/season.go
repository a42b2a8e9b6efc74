// Package valueobject contains domain value objects for the Wardrobe Manager system.
package valueobject

import "strings"

// Season is the season bucket used to restrict which clothing is eligible.
type Season string

const (
	SeasonSummer Season = "summer"
	SeasonWinter Season = "winter"
	SeasonRainy  Season = "rainy"
	// SeasonAll means no season restriction.
	SeasonAll Season = "all"
)

// ClassifySeason maps a weather condition to a season bucket.
// Unknown conditions fall back to SeasonAll.
func ClassifySeason(condition string) Season {
	switch strings.ToLower(strings.TrimSpace(condition)) {
	case "hot", "sunny":
		return SeasonSummer
	case "cold":
		return SeasonWinter
	case "rainy":
		return SeasonRainy
	default:
		return SeasonAll
	}
}

// Allows reports whether an item tagged with the given season may be worn in s.
func (s Season) Allows(itemSeason string) bool {
	if s == SeasonAll {
		return true
	}
	return itemSeason == string(s)
}

var itemSeasonTags = map[string]bool{
	"":       true,
	"summer": true,
	"winter": true,
	"rainy":  true,
	"spring": true,
	"autumn": true,
	"all":    true,
}

// IsValidSeasonTag reports whether a clothing item may carry the given season tag.
func IsValidSeasonTag(tag string) bool {
	return itemSeasonTags[tag]
}
