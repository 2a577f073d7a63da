package fasting

import (
	"math"
	"testing"
	"time"

	"fastwise/internal/model"
)

func finishedFast(hours float64, completed bool) *model.Fast {
	start := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	end := start.Add(time.Duration(hours * float64(time.Hour)))
	return &model.Fast{
		ID:        "f",
		StartTime: start,
		EndTime:   &end,
		Completed: completed,
	}
}

func TestFoldStats(t *testing.T) {
	t.Run("first completed fast", func(t *testing.T) {
		stats := FoldStats(finishedFast(16, true), nil, model.DefaultStats())

		if stats.TotalFasts != 1 {
			t.Errorf("total fasts %d, want 1", stats.TotalFasts)
		}
		if stats.TotalFastingHours != 16 {
			t.Errorf("total hours %v, want 16", stats.TotalFastingHours)
		}
		if stats.LongestFast != 16 {
			t.Errorf("longest %v, want 16", stats.LongestFast)
		}
		if stats.CurrentStreak != 1 {
			t.Errorf("streak %d, want 1", stats.CurrentStreak)
		}
		if stats.CompletionRate != 100 {
			t.Errorf("completion rate %v, want 100", stats.CompletionRate)
		}
	})

	t.Run("abandoned fast resets the streak", func(t *testing.T) {
		prior := model.UserStats{TotalFasts: 3, TotalFastingHours: 48, LongestFast: 20, CurrentStreak: 3, CompletionRate: 100}
		history := []*model.Fast{
			finishedFast(16, true),
			finishedFast(16, true),
			finishedFast(16, true),
		}

		stats := FoldStats(finishedFast(6, false), history, prior)

		if stats.CurrentStreak != 0 {
			t.Errorf("streak %d, want 0", stats.CurrentStreak)
		}
		if stats.TotalFasts != 4 {
			t.Errorf("total fasts %d, want 4", stats.TotalFasts)
		}
		if stats.CompletionRate != 75 {
			t.Errorf("completion rate %v, want 75", stats.CompletionRate)
		}
		if stats.LongestFast != 20 {
			t.Errorf("longest %v, want 20 (unchanged)", stats.LongestFast)
		}
	})

	t.Run("completion rate recomputed from full history", func(t *testing.T) {
		history := []*model.Fast{
			finishedFast(16, true),
			finishedFast(8, false),
			finishedFast(16, true),
			finishedFast(4, false),
		}
		prior := model.UserStats{TotalFasts: 4, CompletionRate: 50}

		stats := FoldStats(finishedFast(16, true), history, prior)

		if stats.TotalFasts != 5 {
			t.Errorf("total fasts %d, want 5", stats.TotalFasts)
		}
		if stats.CompletionRate != 60 {
			t.Errorf("completion rate %v, want 60", stats.CompletionRate)
		}
	})

	t.Run("pauses excluded from duration", func(t *testing.T) {
		fast := finishedFast(17, true)
		fast.PausedTime = time.Hour

		stats := FoldStats(fast, nil, model.DefaultStats())

		if math.Abs(stats.TotalFastingHours-16) > 1e-9 {
			t.Errorf("total hours %v, want 16", stats.TotalFastingHours)
		}
		if math.Abs(stats.LongestFast-16) > 1e-9 {
			t.Errorf("longest %v, want 16", stats.LongestFast)
		}
	})

	t.Run("level and style pass through", func(t *testing.T) {
		prior := model.UserStats{ExperienceLevel: model.LevelAdvanced, MotivationStyle: model.StyleEmotional}

		stats := FoldStats(finishedFast(16, true), nil, prior)

		if stats.ExperienceLevel != model.LevelAdvanced {
			t.Errorf("level %s, want advanced", stats.ExperienceLevel)
		}
		if stats.MotivationStyle != model.StyleEmotional {
			t.Errorf("style %s, want emotional", stats.MotivationStyle)
		}
	})
}
