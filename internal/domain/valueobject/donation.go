// Package valueobject contains domain value objects for the Wardrobe Manager system.
package valueobject

import "time"

const (
	// DonationMaxWearCount is the wear count at or below which an item is a donation candidate.
	DonationMaxWearCount = 2

	// DonationMessageSuggested is returned when an item meets the low-usage criteria.
	DonationMessageSuggested = "This item is suggested for donation due to low usage."

	// DonationMessageNotSuggested is returned when a clothing item does not meet the criteria.
	DonationMessageNotSuggested = "Item does not meet donation criteria."

	// DonationMessageAccessoryNotSuggested is returned when an accessory does not meet the criteria.
	DonationMessageAccessoryNotSuggested = "Accessory does not meet donation criteria."
)

// SuggestDonation reports whether an item with the given usage history is a donation candidate.
// An item qualifies when it has been worn at most twice, or when it was last worn a year or more before now.
// A nil lastWorn never satisfies the date clause.
func SuggestDonation(wearCount int, lastWorn *time.Time, now time.Time) bool {
	if wearCount <= DonationMaxWearCount {
		return true
	}
	if lastWorn == nil {
		return false
	}
	oneYearAgo := now.AddDate(-1, 0, 0)
	return !lastWorn.After(oneYearAgo)
}
