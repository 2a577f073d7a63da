package database_test

import (
	"testing"
	"time"

	"fastwise/internal/fasting"
	"fastwise/internal/model"
	"fastwise/internal/testutil"
)

func sampleFast(completed bool) *model.Fast {
	start := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	end := start.Add(16 * time.Hour)
	return &model.Fast{
		ID:             "fast-1",
		ProtocolID:     "16-8",
		StartTime:      start,
		EndTime:        &end,
		PlannedEndTime: end,
		PausedTime:     30 * time.Minute,
		Completed:      completed,
		Notes:          "felt fine",
		Symptoms:       []string{"headache"},
		Energy:         6,
		Mood:           model.MoodGood,
	}
}

func TestSQLiteStoreDefaults(t *testing.T) {
	store := testutil.NewTestStore(t)

	state, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if state.ActiveFast != nil {
		t.Error("expected no active fast")
	}
	if len(state.History) != 0 || len(state.ChatLog) != 0 || len(state.Journal) != 0 {
		t.Error("expected empty collections")
	}
	if state.Stats != model.DefaultStats() {
		t.Errorf("stats %+v, want defaults", state.Stats)
	}
	if state.Preferences != model.DefaultPreferences() {
		t.Errorf("preferences %+v, want defaults", state.Preferences)
	}
}

func TestSQLiteStoreActiveFast(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		store := testutil.NewTestStore(t)

		fast := sampleFast(false)
		fast.EndTime = nil
		pauseStart := fast.StartTime.Add(2 * time.Hour)
		fast.IsPaused = true
		fast.PauseStartTime = &pauseStart

		if err := store.SaveActiveFast(fast); err != nil {
			t.Fatalf("save: %v", err)
		}

		state, err := store.Load()
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		got := state.ActiveFast
		if got == nil {
			t.Fatal("active fast not loaded")
		}
		if got.ID != fast.ID || got.ProtocolID != fast.ProtocolID {
			t.Errorf("identity mismatch: %+v", got)
		}
		if !got.StartTime.Equal(fast.StartTime) || !got.PlannedEndTime.Equal(fast.PlannedEndTime) {
			t.Errorf("timestamps mismatch: %+v", got)
		}
		if got.PausedTime != fast.PausedTime {
			t.Errorf("paused time %v, want %v", got.PausedTime, fast.PausedTime)
		}
		if !got.IsPaused || got.PauseStartTime == nil || !got.PauseStartTime.Equal(pauseStart) {
			t.Errorf("pause state mismatch: %+v", got)
		}
		if got.EndTime != nil {
			t.Error("end time should be nil for an active fast")
		}
		if len(got.Symptoms) != 1 || got.Symptoms[0] != "headache" {
			t.Errorf("symptoms %v", got.Symptoms)
		}
		if got.Energy != 6 || got.Mood != model.MoodGood {
			t.Errorf("check-in fields mismatch: %+v", got)
		}
	})

	t.Run("upsert replaces the slot", func(t *testing.T) {
		store := testutil.NewTestStore(t)

		fast := sampleFast(false)
		fast.EndTime = nil
		if err := store.SaveActiveFast(fast); err != nil {
			t.Fatalf("save: %v", err)
		}
		fast.Notes = "updated"
		if err := store.SaveActiveFast(fast); err != nil {
			t.Fatalf("second save: %v", err)
		}

		state, err := store.Load()
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if state.ActiveFast.Notes != "updated" {
			t.Errorf("notes %q, want updated", state.ActiveFast.Notes)
		}
	})

	t.Run("nil clears the slot", func(t *testing.T) {
		store := testutil.NewTestStore(t)

		fast := sampleFast(false)
		fast.EndTime = nil
		if err := store.SaveActiveFast(fast); err != nil {
			t.Fatalf("save: %v", err)
		}
		if err := store.SaveActiveFast(nil); err != nil {
			t.Fatalf("clear: %v", err)
		}

		state, err := store.Load()
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if state.ActiveFast != nil {
			t.Error("active fast not cleared")
		}
	})
}

func TestSQLiteStoreFinalizeFast(t *testing.T) {
	store := testutil.NewTestStore(t)

	active := sampleFast(true)
	active.EndTime = nil
	if err := store.SaveActiveFast(active); err != nil {
		t.Fatalf("save: %v", err)
	}

	finished := sampleFast(true)
	stats := model.UserStats{
		TotalFasts:        1,
		TotalFastingHours: 15.5,
		LongestFast:       15.5,
		CurrentStreak:     1,
		CompletionRate:    100,
		ExperienceLevel:   model.LevelBeginner,
		MotivationStyle:   model.StyleScientific,
	}
	if err := store.FinalizeFast(finished, stats); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	state, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state.ActiveFast != nil {
		t.Error("active slot not cleared")
	}
	if len(state.History) != 1 {
		t.Fatalf("history length %d, want 1", len(state.History))
	}
	got := state.History[0]
	if got.ID != finished.ID || !got.Completed {
		t.Errorf("history record %+v", got)
	}
	if got.EndTime == nil || !got.EndTime.Equal(*finished.EndTime) {
		t.Errorf("end time %v, want %v", got.EndTime, finished.EndTime)
	}
	if state.Stats != stats {
		t.Errorf("stats %+v, want %+v", state.Stats, stats)
	}
}

func TestSQLiteStoreAppendLogs(t *testing.T) {
	t.Run("chat messages keep insertion order", func(t *testing.T) {
		store := testutil.NewTestStore(t)

		ts := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
		msgs := []model.ChatMessage{
			{ID: "m1", Sender: model.SenderAI, Message: "hello", Timestamp: ts},
			{ID: "m2", Sender: model.SenderUser, Message: "hi", Timestamp: ts.Add(time.Minute)},
			{ID: "m3", Sender: model.SenderAI, Message: "how can I help?", Timestamp: ts.Add(2 * time.Minute)},
		}
		for _, m := range msgs {
			if err := store.AppendChatMessage(m); err != nil {
				t.Fatalf("append: %v", err)
			}
		}

		state, err := store.Load()
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(state.ChatLog) != 3 {
			t.Fatalf("chat log length %d, want 3", len(state.ChatLog))
		}
		for i, m := range state.ChatLog {
			if m.ID != msgs[i].ID || m.Message != msgs[i].Message {
				t.Errorf("entry %d = %+v, want %+v", i, m, msgs[i])
			}
			if !m.Timestamp.Equal(msgs[i].Timestamp) {
				t.Errorf("entry %d timestamp %v, want %v", i, m.Timestamp, msgs[i].Timestamp)
			}
		}
	})

	t.Run("journal entries round trip", func(t *testing.T) {
		store := testutil.NewTestStore(t)

		entry := model.ProgressEntry{
			Date:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Weight:   80.5,
			Energy:   7,
			Mood:     model.MoodGreat,
			Sleep:    7.5,
			Notes:    "slept well",
			Symptoms: []string{"hunger"},
		}
		if err := store.AppendProgressEntry(entry); err != nil {
			t.Fatalf("append: %v", err)
		}

		state, err := store.Load()
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(state.Journal) != 1 {
			t.Fatalf("journal length %d, want 1", len(state.Journal))
		}
		got := state.Journal[0]
		if !got.Date.Equal(entry.Date) || got.Weight != entry.Weight || got.Mood != entry.Mood {
			t.Errorf("entry %+v, want %+v", got, entry)
		}
		if len(got.Symptoms) != 1 || got.Symptoms[0] != "hunger" {
			t.Errorf("symptoms %v", got.Symptoms)
		}
	})
}

func TestSQLiteStorePreferencesAndStats(t *testing.T) {
	store := testutil.NewTestStore(t)

	prefs := model.UserPreferences{
		Theme:                        "light",
		DefaultProtocol:              "18-6",
		Notifications:                false,
		SafetyDisclaimerAcknowledged: true,
		Dietary:                      model.DietaryPreferences{Vegetarian: true, Keto: true},
		ExperienceLevel:              model.LevelIntermediate,
		MotivationStyle:              model.StyleEmotional,
	}
	if err := store.SavePreferences(prefs); err != nil {
		t.Fatalf("save preferences: %v", err)
	}

	stats := model.UserStats{TotalFasts: 7, CurrentStreak: 3, CompletionRate: 71.5,
		ExperienceLevel: model.LevelIntermediate, MotivationStyle: model.StyleEmotional}
	if err := store.SaveStats(stats); err != nil {
		t.Fatalf("save stats: %v", err)
	}

	state, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state.Preferences != prefs {
		t.Errorf("preferences %+v, want %+v", state.Preferences, prefs)
	}
	if state.Stats != stats {
		t.Errorf("stats %+v, want %+v", state.Stats, stats)
	}
}

func TestSQLiteStoreReplace(t *testing.T) {
	store := testutil.NewTestStore(t)

	// Pre-populate with state that must be wiped.
	if err := store.AppendChatMessage(model.ChatMessage{ID: "old", Sender: model.SenderAI, Message: "x", Timestamp: time.Now()}); err != nil {
		t.Fatalf("append: %v", err)
	}

	snapshot := &fasting.State{
		History: []*model.Fast{sampleFast(true)},
		Stats:   model.UserStats{TotalFasts: 1, CompletionRate: 100, ExperienceLevel: model.LevelBeginner, MotivationStyle: model.StyleScientific},
		ChatLog: []model.ChatMessage{
			{ID: "new", Sender: model.SenderUser, Message: "restored", Timestamp: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		},
		Preferences: model.DefaultPreferences(),
	}
	if err := store.Replace(snapshot); err != nil {
		t.Fatalf("replace: %v", err)
	}

	state, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(state.ChatLog) != 1 || state.ChatLog[0].ID != "new" {
		t.Errorf("chat log %v, want only the restored message", state.ChatLog)
	}
	if len(state.History) != 1 || state.History[0].ID != "fast-1" {
		t.Errorf("history %v, want the restored fast", state.History)
	}
	if state.Stats.TotalFasts != 1 {
		t.Errorf("stats %+v", state.Stats)
	}
}
