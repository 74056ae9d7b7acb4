package nlp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNumber(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  float64
		found bool
	}{
		{"digit run with unit", "25 days", 25, true},
		{"bare digits", "my notice period is 30", 30, true},
		{"cardinal words", "twenty five", 25, true},
		{"digit lakhs", "5 lakhs", 5, true},
		{"word lakhs", "five lakhs", 5, true},
		{"lakh singular", "twelve lakh", 12, true},
		{"compound hundred", "two hundred", 200, true},
		{"phrase stops at unrelated word", "fifteen days roughly", 15, true},
		{"leading filler words", "i think it is ten days", 10, true},
		{"no number", "sometime soon", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractNumber(tt.text)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolveNextWeekday(t *testing.T) {
	// A fixed Wednesday keeps expectations stable.
	now := time.Date(2025, time.June, 4, 10, 0, 0, 0, time.UTC)
	require.Equal(t, time.Wednesday, now.Weekday())

	t.Run("later this week", func(t *testing.T) {
		got, err := ResolveNextWeekday("friday", now)
		require.NoError(t, err)
		assert.Equal(t, "2025-06-06", got)
	})

	t.Run("earlier weekday rolls to next week", func(t *testing.T) {
		got, err := ResolveNextWeekday("monday", now)
		require.NoError(t, err)
		assert.Equal(t, "2025-06-09", got)
	})

	t.Run("same weekday is a full week ahead, never today", func(t *testing.T) {
		got, err := ResolveNextWeekday("wednesday", now)
		require.NoError(t, err)
		assert.Equal(t, "2025-06-11", got)
	})

	t.Run("next-day synonym", func(t *testing.T) {
		got, err := ResolveNextWeekday("next monday", now)
		require.NoError(t, err)
		assert.Equal(t, "2025-06-09", got)
	})

	t.Run("unknown weekday", func(t *testing.T) {
		_, err := ResolveNextWeekday("someday", now)
		assert.Error(t, err)
	})
}

func TestCanonicalWeekday(t *testing.T) {
	assert.Equal(t, "monday", CanonicalWeekday("coming monday"))
	assert.Equal(t, "friday", CanonicalWeekday("friday"))
}
