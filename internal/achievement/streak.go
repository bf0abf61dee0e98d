package achievement

import (
	"sort"
	"time"

	"github.com/budgetbadger/budgetbadger/internal/transaction"
)

const (
	streakLength = 7

	// StreakBonus is the flat award for a 7-consecutive-day activity streak.
	StreakBonus = 10
)

// HasStreak reports whether the given activity dates contain 7 distinct
// consecutive calendar days. Duplicate dates collapse to one day; zero dates
// (entries whose date could not be parsed upstream) are ignored. Runs in
// O(n log n) on the deduplicated set.
func HasStreak(dates []time.Time) bool {
	days := make(map[time.Time]struct{}, len(dates))

	for _, d := range dates {
		if d.IsZero() {
			continue
		}

		days[transaction.Day(d)] = struct{}{}
	}

	if len(days) < streakLength {
		return false
	}

	sorted := make([]time.Time, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}

	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	// A window of 7 sorted distinct days spanning exactly 6 days is a streak.
	span := time.Duration(streakLength-1) * 24 * time.Hour
	for i := 0; i+streakLength <= len(sorted); i++ {
		if sorted[i+streakLength-1].Sub(sorted[i]) == span {
			return true
		}
	}

	return false
}
