package fasting

import "fastwise/internal/model"

// FoldStats rolls one finished fast into the cumulative user stats.
//
// It is a pure function of the finished fast, the prior history (NOT
// including the finished fast) and the prior stats. The completion
// rate is recomputed from the whole history set rather than updated
// incrementally, so it never drifts. Experience level and motivation
// style are owned by preferences and pass through unchanged.
func FoldStats(finished *model.Fast, history []*model.Fast, prior model.UserStats) model.UserStats {
	durationHours := finished.Duration().Hours()

	stats := prior
	stats.TotalFasts = prior.TotalFasts + 1
	stats.TotalFastingHours = prior.TotalFastingHours + durationHours
	if durationHours > stats.LongestFast {
		stats.LongestFast = durationHours
	}
	if finished.Completed {
		stats.CurrentStreak = prior.CurrentStreak + 1
	} else {
		stats.CurrentStreak = 0
	}

	completed := 0
	for _, f := range history {
		if f.Completed {
			completed++
		}
	}
	if finished.Completed {
		completed++
	}
	stats.CompletionRate = float64(completed) / float64(stats.TotalFasts) * 100

	return stats
}
