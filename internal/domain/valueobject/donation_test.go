package valueobject

import (
	"testing"
	"time"
)

func TestSuggestDonation(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	ptr := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name      string
		wearCount int
		lastWorn  *time.Time
		expected  bool
	}{
		{"never worn", 0, nil, true},
		{"worn twice recently", 2, ptr(now), true},
		{"worn three times recently", 3, ptr(now), false},
		{"worn often but 400 days ago", 5, ptr(now.AddDate(0, 0, -400)), true},
		{"worn often exactly one year ago", 5, ptr(now.AddDate(-1, 0, 0)), true},
		{"worn often one day short of a year", 5, ptr(now.AddDate(-1, 0, 1)), false},
		{"worn often with no last worn date", 10, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuggestDonation(tt.wearCount, tt.lastWorn, now); got != tt.expected {
				t.Errorf("SuggestDonation(%d, %v) = %v, expected %v", tt.wearCount, tt.lastWorn, got, tt.expected)
			}
		})
	}
}
