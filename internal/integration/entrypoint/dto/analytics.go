package dto

import (
	"time"

	"github.com/wardrobe-manager/backend/internal/application/usecase/analytics"
	"github.com/wardrobe-manager/backend/internal/application/usecase/donation"
)

// UsageListsResponse groups clothing and accessory rankings.
type UsageListsResponse struct {
	Clothes     []ClothingResponse  `json:"clothes"`
	Accessories []AccessoryResponse `json:"accessories"`
}

// BreakdownEntryResponse is one category or type bucket.
type BreakdownEntryResponse struct {
	Key        string  `json:"key"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// BreakdownResponse groups clothing categories and accessory types.
type BreakdownResponse struct {
	Clothes     []BreakdownEntryResponse `json:"clothes"`
	Accessories []BreakdownEntryResponse `json:"accessories"`
}

// TotalsResponse holds the collection sizes.
type TotalsResponse struct {
	Clothes     int `json:"clothes"`
	Accessories int `json:"accessories"`
	Outfits     int `json:"outfits"`
}

// AnalyticsResponse represents the wardrobe usage report.
type AnalyticsResponse struct {
	Totals              TotalsResponse     `json:"totals"`
	MostUsed            UsageListsResponse `json:"most_used"`
	DonationSuggestions UsageListsResponse `json:"donation_suggestions"`
	Breakdown           BreakdownResponse  `json:"breakdown"`
}

// DonationSuggestionResponse represents the donation advice for one item.
type DonationSuggestionResponse struct {
	Suggested bool       `json:"suggested"`
	Message   string     `json:"message"`
	WearCount int        `json:"wear_count"`
	LastWorn  *time.Time `json:"last_worn"`
}

// ToAnalyticsResponse converts an analytics report.
func ToAnalyticsResponse(report analytics.Report) AnalyticsResponse {
	return AnalyticsResponse{
		Totals: TotalsResponse{
			Clothes:     report.Totals.Clothes,
			Accessories: report.Totals.Accessories,
			Outfits:     report.Totals.Outfits,
		},
		MostUsed: UsageListsResponse{
			Clothes:     ToClothingResponses(report.MostUsed.Clothes),
			Accessories: ToAccessoryResponses(report.MostUsed.Accessories),
		},
		DonationSuggestions: UsageListsResponse{
			Clothes:     ToClothingResponses(report.DonationSuggestions.Clothes),
			Accessories: ToAccessoryResponses(report.DonationSuggestions.Accessories),
		},
		Breakdown: BreakdownResponse{
			Clothes:     toBreakdownEntries(report.Breakdown.Clothes),
			Accessories: toBreakdownEntries(report.Breakdown.Accessories),
		},
	}
}

func toBreakdownEntries(entries []analytics.BreakdownEntry) []BreakdownEntryResponse {
	result := make([]BreakdownEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = BreakdownEntryResponse{Key: e.Key, Count: e.Count, Percentage: e.Percentage}
	}
	return result
}

// ToDonationSuggestionResponse converts the output of a donation check.
func ToDonationSuggestionResponse(output *donation.SuggestDonationOutput) DonationSuggestionResponse {
	return DonationSuggestionResponse{
		Suggested: output.Suggested,
		Message:   output.Message,
		WearCount: output.WearCount,
		LastWorn:  output.LastWorn,
	}
}
