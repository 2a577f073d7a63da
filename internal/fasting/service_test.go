package fasting_test

import (
	"errors"
	"testing"
	"time"

	"fastwise/internal/fasting"
	"fastwise/internal/model"
	"fastwise/internal/testutil"
)

func newTestService(t *testing.T, store *testutil.MemStore, clock *testutil.StubClock) *fasting.Service {
	t.Helper()
	service, err := fasting.NewService(store, fasting.NewNopLogger(), clock, testutil.NewStubIDGenerator(), testutil.NewStubRand())
	if err != nil {
		t.Fatalf("creating service: %v", err)
	}
	return service
}

func TestServiceFastLifecycle(t *testing.T) {
	t.Run("start writes the active fast through", func(t *testing.T) {
		store := testutil.NewMemStore()
		service := newTestService(t, store, testutil.FixedClock())

		fast, err := service.StartFast("16-8")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.ActiveFast == nil || store.ActiveFast.ID != fast.ID {
			t.Error("active fast not persisted")
		}
	})

	t.Run("empty protocol falls back to the preferred default", func(t *testing.T) {
		store := testutil.NewMemStore()
		store.Prefs.DefaultProtocol = "18-6"
		service := newTestService(t, store, testutil.FixedClock())

		fast, err := service.StartFast("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fast.ProtocolID != "18-6" {
			t.Errorf("protocol %s, want 18-6", fast.ProtocolID)
		}
	})

	t.Run("pause and resume write through", func(t *testing.T) {
		store := testutil.NewMemStore()
		clock := testutil.FixedClock()
		service := newTestService(t, store, clock)

		if _, err := service.StartFast("16-8"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		clock.Advance(time.Hour)
		if err := service.PauseFast(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !store.ActiveFast.IsPaused {
			t.Error("pause not persisted")
		}
		clock.Advance(30 * time.Minute)
		if err := service.ResumeFast(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.ActiveFast.IsPaused {
			t.Error("resume not persisted")
		}
		if store.ActiveFast.PausedTime != 30*time.Minute {
			t.Errorf("persisted paused time %v, want 30m", store.ActiveFast.PausedTime)
		}
	})

	t.Run("end finalizes exactly one history record", func(t *testing.T) {
		store := testutil.NewMemStore()
		clock := testutil.FixedClock()
		service := newTestService(t, store, clock)

		if _, err := service.StartFast("16-8"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		clock.Advance(16 * time.Hour)

		fast, stats, err := service.EndFast(true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.FinalizeCalls != 1 {
			t.Errorf("finalize calls %d, want 1", store.FinalizeCalls)
		}
		if len(store.History) != 1 || store.History[0].ID != fast.ID {
			t.Errorf("history %v, want the one finished fast", store.History)
		}
		if store.ActiveFast != nil {
			t.Error("active slot not cleared")
		}
		if stats.TotalFasts != 1 || stats.CurrentStreak != 1 {
			t.Errorf("stats %+v, want one completed fast", stats)
		}
		if service.ActiveFast() != nil {
			t.Error("service still has an active fast")
		}
	})

	t.Run("second end errors", func(t *testing.T) {
		store := testutil.NewMemStore()
		service := newTestService(t, store, testutil.FixedClock())

		if _, err := service.StartFast("16-8"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, _, err := service.EndFast(true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, _, err := service.EndFast(true); !errors.Is(err, fasting.ErrNoActiveFast) {
			t.Errorf("expected ErrNoActiveFast, got %v", err)
		}
	})

	t.Run("restart resumes a persisted fast", func(t *testing.T) {
		store := testutil.NewMemStore()
		clock := testutil.FixedClock()
		service := newTestService(t, store, clock)

		if _, err := service.StartFast("16-8"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		clock.Advance(5 * time.Hour)

		// A fresh service over the same store picks up where we left off.
		reloaded := newTestService(t, store, clock)
		if reloaded.ActiveFast() == nil {
			t.Fatal("active fast not restored")
		}
		if got := reloaded.ElapsedTime(); got != 5*time.Hour {
			t.Errorf("elapsed %v, want 5h", got)
		}
	})
}

func TestServiceChat(t *testing.T) {
	t.Run("welcome seeds an empty log once", func(t *testing.T) {
		store := testutil.NewMemStore()
		service := newTestService(t, store, testutil.FixedClock())

		msg, seeded, err := service.EnsureWelcome()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !seeded {
			t.Fatal("expected the welcome to be seeded")
		}
		if msg.Sender != model.SenderAI || msg.Message == "" {
			t.Errorf("welcome message %+v", msg)
		}

		if _, seeded, err := service.EnsureWelcome(); err != nil || seeded {
			t.Errorf("second call seeded=%v err=%v, want no-op", seeded, err)
		}
		if len(store.ChatLog) != 1 {
			t.Errorf("chat log length %d, want 1", len(store.ChatLog))
		}
	})

	t.Run("respond appends user message then reply", func(t *testing.T) {
		store := testutil.NewMemStore()
		service := newTestService(t, store, testutil.FixedClock())

		reply, err := service.Respond("how do I start?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Sender != model.SenderAI || reply.Message == "" {
			t.Errorf("reply %+v", reply)
		}

		log := service.ChatHistory()
		if len(log) != 2 {
			t.Fatalf("chat log length %d, want 2", len(log))
		}
		if log[0].Sender != model.SenderUser || log[0].Message != "how do I start?" {
			t.Errorf("first entry %+v, want the user message", log[0])
		}
		if log[1].ID != reply.ID {
			t.Errorf("second entry %+v, want the reply", log[1])
		}
		if len(store.ChatLog) != 2 {
			t.Errorf("persisted log length %d, want 2", len(store.ChatLog))
		}
	})
}

func TestServiceJournal(t *testing.T) {
	store := testutil.NewMemStore()
	clock := testutil.FixedClock()
	service := newTestService(t, store, clock)

	if err := service.AddProgressEntry(model.ProgressEntry{Weight: 80.5, Energy: 7}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := service.Journal()
	if len(entries) != 1 {
		t.Fatalf("journal length %d, want 1", len(entries))
	}
	if !entries[0].Date.Equal(clock.Now()) {
		t.Errorf("date %v, want stamped with now", entries[0].Date)
	}
	if len(store.Journal) != 1 {
		t.Errorf("persisted journal length %d, want 1", len(store.Journal))
	}
}

func TestServiceProfile(t *testing.T) {
	t.Run("update mirrors into stats", func(t *testing.T) {
		store := testutil.NewMemStore()
		service := newTestService(t, store, testutil.FixedClock())

		if err := service.UpdateProfile(model.LevelAdvanced, model.StyleEmotional); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := service.Preferences().ExperienceLevel; got != model.LevelAdvanced {
			t.Errorf("preference level %s, want advanced", got)
		}
		if got := service.Stats().ExperienceLevel; got != model.LevelAdvanced {
			t.Errorf("stats level %s, want advanced", got)
		}
		if store.StatsRecord.MotivationStyle != model.StyleEmotional {
			t.Error("stats mirror not persisted")
		}
		if store.Prefs.MotivationStyle != model.StyleEmotional {
			t.Error("preferences not persisted")
		}
	})

	t.Run("empty fields leave values unchanged", func(t *testing.T) {
		store := testutil.NewMemStore()
		service := newTestService(t, store, testutil.FixedClock())

		if err := service.UpdateProfile(model.LevelIntermediate, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := service.Preferences().MotivationStyle; got != model.StyleScientific {
			t.Errorf("style %s, want the scientific default", got)
		}
	})
}

func TestServiceSeedDefaultPreferences(t *testing.T) {
	t.Run("seeds a fresh database from configured defaults", func(t *testing.T) {
		store := testutil.NewMemStore()
		service := newTestService(t, store, testutil.FixedClock())

		if err := service.SeedDefaultPreferences("18-6", model.LevelIntermediate, model.StyleEmotional); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		prefs := service.Preferences()
		if prefs.DefaultProtocol != "18-6" {
			t.Errorf("default protocol %s, want 18-6", prefs.DefaultProtocol)
		}
		if prefs.ExperienceLevel != model.LevelIntermediate {
			t.Errorf("level %s, want intermediate", prefs.ExperienceLevel)
		}
		if service.Stats().MotivationStyle != model.StyleEmotional {
			t.Error("style not mirrored into stats")
		}
		if store.Prefs.DefaultProtocol != "18-6" {
			t.Error("seeded preferences not persisted")
		}

		// The seeded default drives protocol-less starts.
		fast, err := service.StartFast("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fast.ProtocolID != "18-6" {
			t.Errorf("protocol %s, want the seeded default", fast.ProtocolID)
		}
	})

	t.Run("never overrides explicitly saved preferences", func(t *testing.T) {
		store := testutil.NewMemStore()
		service := newTestService(t, store, testutil.FixedClock())

		if err := service.UpdateProfile(model.LevelAdvanced, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := service.SeedDefaultPreferences("20-4", model.LevelIntermediate, model.StyleEmotional); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		prefs := service.Preferences()
		if prefs.ExperienceLevel != model.LevelAdvanced {
			t.Errorf("level %s, want the explicit advanced", prefs.ExperienceLevel)
		}
		if prefs.DefaultProtocol != "16-8" {
			t.Errorf("default protocol %s, want untouched 16-8", prefs.DefaultProtocol)
		}
	})

	t.Run("built-in values produce no writes", func(t *testing.T) {
		store := testutil.NewMemStore()
		service := newTestService(t, store, testutil.FixedClock())

		if err := service.SeedDefaultPreferences("16-8", model.LevelBeginner, model.StyleScientific); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := service.SeedDefaultPreferences("", "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects an unknown default protocol", func(t *testing.T) {
		store := testutil.NewMemStore()
		service := newTestService(t, store, testutil.FixedClock())

		err := service.SeedDefaultPreferences("3-21", "", "")
		if !errors.Is(err, fasting.ErrUnknownProtocol) {
			t.Errorf("expected ErrUnknownProtocol, got %v", err)
		}
	})
}

func TestServiceCheckIn(t *testing.T) {
	store := testutil.NewMemStore()
	service := newTestService(t, store, testutil.FixedClock())

	if _, err := service.StartFast("16-8"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.RecordCheckIn(6, model.MoodNeutral, []string{"headache"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.SetNotes("rough afternoon"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	persisted := store.ActiveFast
	if persisted.Energy != 6 || persisted.Mood != model.MoodNeutral {
		t.Errorf("persisted check-in %+v", persisted)
	}
	if persisted.Notes != "rough afternoon" {
		t.Errorf("persisted notes %q", persisted.Notes)
	}
}
