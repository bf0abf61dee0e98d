package achievement_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/budgetbadger/budgetbadger/internal/achievement"
)

func days(dates ...string) []time.Time {
	out := make([]time.Time, 0, len(dates))

	for _, d := range dates {
		t, err := time.Parse(time.DateOnly, d)
		if err != nil {
			panic(err)
		}

		out = append(out, t)
	}

	return out
}

func TestHasStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []time.Time
		want  bool
	}{
		{
			name:  "SevenConsecutiveDays",
			dates: days("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05", "2024-01-06", "2024-01-07"),
			want:  true,
		},
		{
			name:  "GapInTheMiddle",
			dates: days("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05", "2024-01-06", "2024-01-07"),
			want:  false,
		},
		{
			name: "DuplicatesCollapseToOneDay",
			dates: days("2024-01-01", "2024-01-01", "2024-01-02", "2024-01-02", "2024-01-03", "2024-01-04",
				"2024-01-05", "2024-01-06", "2024-01-06"),
			want: false,
		},
		{
			name: "DuplicatesDoNotBreakRealStreak",
			dates: days("2024-01-01", "2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
				"2024-01-05", "2024-01-06", "2024-01-07", "2024-01-07"),
			want: true,
		},
		{
			name:  "UnsortedInput",
			dates: days("2024-01-07", "2024-01-03", "2024-01-01", "2024-01-05", "2024-01-02", "2024-01-06", "2024-01-04"),
			want:  true,
		},
		{
			name: "StreakBuriedInLongerHistory",
			dates: days("2023-11-02", "2023-12-25", "2024-02-10", "2024-02-11", "2024-02-12", "2024-02-13",
				"2024-02-14", "2024-02-15", "2024-02-16", "2024-03-01"),
			want: true,
		},
		{
			name:  "CrossesMonthBoundary",
			dates: days("2024-01-29", "2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02", "2024-02-03", "2024-02-04"),
			want:  true,
		},
		{
			name:  "FewerThanSevenDistinctDays",
			dates: days("2024-01-01", "2024-01-02", "2024-01-03"),
			want:  false,
		},
		{
			name:  "Empty",
			dates: nil,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, achievement.HasStreak(tt.dates))
		})
	}
}

func TestHasStreak_IgnoresZeroDates(t *testing.T) {
	dates := days("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05", "2024-01-06")
	dates = append(dates, time.Time{})

	// The zero date must not be treated as a seventh day.
	assert.False(t, achievement.HasStreak(dates))
}

func TestHasStreak_TimestampsOnSameDayCollapse(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	var dates []time.Time
	for i := 0; i < 7; i++ {
		dates = append(dates,
			base.AddDate(0, 0, i).Add(9*time.Hour),
			base.AddDate(0, 0, i).Add(21*time.Hour),
		)
	}

	assert.True(t, achievement.HasStreak(dates))
}
