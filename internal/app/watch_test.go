package app

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"fastwise/internal/fasting"
	"fastwise/internal/testutil"
)

func newWatchService(t *testing.T, clock *testutil.StubClock) *fasting.Service {
	t.Helper()
	service, err := fasting.NewService(testutil.NewMemStore(), fasting.NewNopLogger(), clock,
		testutil.NewStubIDGenerator(), testutil.NewStubRand())
	if err != nil {
		t.Fatalf("creating service: %v", err)
	}
	return service
}

func TestWatcherTick(t *testing.T) {
	t.Run("stops when no fast is active", func(t *testing.T) {
		service := newWatchService(t, testutil.FixedClock())
		var buf bytes.Buffer
		w := NewWatcher(service, &buf)

		if w.tick() {
			t.Error("tick should report done when idle")
		}
		if !strings.Contains(buf.String(), "No active fast.") {
			t.Errorf("output %q", buf.String())
		}
	})

	t.Run("renders elapsed and remaining", func(t *testing.T) {
		clock := testutil.FixedClock()
		service := newWatchService(t, clock)
		if _, err := service.StartFast("16-8"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		clock.Advance(2 * time.Hour)

		var buf bytes.Buffer
		w := NewWatcher(service, &buf)
		if !w.tick() {
			t.Fatal("tick should keep running with an active fast")
		}

		out := buf.String()
		if !strings.Contains(out, "elapsed 02:00:00") {
			t.Errorf("output %q missing elapsed time", out)
		}
		if !strings.Contains(out, "remaining 14:00:00") {
			t.Errorf("output %q missing remaining time", out)
		}
	})

	t.Run("announces stage transitions", func(t *testing.T) {
		clock := testutil.FixedClock()
		service := newWatchService(t, clock)
		if _, err := service.StartFast("16-8"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var buf bytes.Buffer
		w := NewWatcher(service, &buf)
		w.tick()
		if strings.Contains(buf.String(), "Entered stage") {
			t.Error("first tick should not announce a transition")
		}

		clock.Advance(5 * time.Hour)
		buf.Reset()
		w.tick()
		if !strings.Contains(buf.String(), "Entered stage 2") {
			t.Errorf("output %q missing the stage notice", buf.String())
		}
	})

	t.Run("renders paused state without remaining", func(t *testing.T) {
		clock := testutil.FixedClock()
		service := newWatchService(t, clock)
		if _, err := service.StartFast("16-8"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		clock.Advance(time.Hour)
		if err := service.PauseFast(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var buf bytes.Buffer
		w := NewWatcher(service, &buf)
		if !w.tick() {
			t.Fatal("tick should keep running while paused")
		}
		out := buf.String()
		if !strings.Contains(out, "[paused]") {
			t.Errorf("output %q missing the paused marker", out)
		}
		if strings.Contains(out, "remaining") {
			t.Errorf("output %q should not show remaining while paused", out)
		}
	})

	t.Run("tolerates overlapping finish signals", func(t *testing.T) {
		service := newWatchService(t, testutil.FixedClock())
		w := NewWatcher(service, &bytes.Buffer{})

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w.finish()
			}()
		}
		wg.Wait()

		select {
		case <-w.done:
		default:
			t.Error("done channel should be closed after finish")
		}
	})

	t.Run("announces the planned end once", func(t *testing.T) {
		clock := testutil.FixedClock()
		service := newWatchService(t, clock)
		if _, err := service.StartFast("16-8"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		clock.Advance(17 * time.Hour)

		var buf bytes.Buffer
		w := NewWatcher(service, &buf)
		w.tick()
		if !strings.Contains(buf.String(), "Planned fast duration reached") {
			t.Errorf("output %q missing the completion notice", buf.String())
		}

		buf.Reset()
		w.tick()
		if strings.Contains(buf.String(), "Planned fast duration reached") {
			t.Error("completion notice repeated")
		}
	})
}
