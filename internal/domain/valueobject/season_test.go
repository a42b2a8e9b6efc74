package valueobject

import "testing"

func TestClassifySeason(t *testing.T) {
	tests := []struct {
		condition string
		expected  Season
	}{
		{"hot", SeasonSummer},
		{"sunny", SeasonSummer},
		{"cold", SeasonWinter},
		{"rainy", SeasonRainy},
		{"foggy", SeasonAll},
		{"", SeasonAll},
		{" Cold ", SeasonWinter},
		{"SUNNY", SeasonSummer},
	}

	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			if got := ClassifySeason(tt.condition); got != tt.expected {
				t.Errorf("ClassifySeason(%q) = %s, expected %s", tt.condition, got, tt.expected)
			}
		})
	}
}

func TestSeason_Allows(t *testing.T) {
	t.Run("all allows any tag", func(t *testing.T) {
		for _, tag := range []string{"", "summer", "winter", "spring"} {
			if !SeasonAll.Allows(tag) {
				t.Errorf("expected SeasonAll to allow %q", tag)
			}
		}
	})

	t.Run("specific season requires matching tag", func(t *testing.T) {
		if !SeasonWinter.Allows("winter") {
			t.Error("expected winter to allow winter")
		}
		if SeasonWinter.Allows("summer") {
			t.Error("expected winter to reject summer")
		}
		if SeasonWinter.Allows("") {
			t.Error("expected winter to reject untagged items")
		}
	})
}

func TestIsValidSeasonTag(t *testing.T) {
	for _, tag := range []string{"", "summer", "winter", "rainy", "spring", "autumn", "all"} {
		if !IsValidSeasonTag(tag) {
			t.Errorf("expected %q to be valid", tag)
		}
	}
	for _, tag := range []string{"monsoon", "Summer", "fall"} {
		if IsValidSeasonTag(tag) {
			t.Errorf("expected %q to be invalid", tag)
		}
	}
}
