package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"fastwise/internal/fasting"
)

// Watcher periodically renders the state of the active fast to an
// output stream. It notices stage transitions and the planned end time
// being reached, and prints a line for each.
type Watcher struct {
	service *fasting.Service
	out     io.Writer

	lastStage int
	notified  bool

	done     chan struct{}
	doneOnce sync.Once
}

// NewWatcher creates a Watcher that writes to out.
func NewWatcher(service *fasting.Service, out io.Writer) *Watcher {
	return &Watcher{service: service, out: out, lastStage: -1, done: make(chan struct{})}
}

// Run polls once per second until ctx is cancelled or the active fast
// ends. It returns an error only if the scheduler cannot be created.
func (w *Watcher) Run(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	defer func() { _ = scheduler.Shutdown() }()

	_, err = scheduler.NewJob(
		gocron.DurationJob(1*time.Second),
		gocron.NewTask(func() {
			if !w.tick() {
				w.finish()
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("scheduling watch job: %w", err)
	}

	scheduler.Start()

	select {
	case <-ctx.Done():
	case <-w.done:
	}
	return nil
}

// finish marks the watch loop done. Safe to call from overlapping job
// executions.
func (w *Watcher) finish() {
	w.doneOnce.Do(func() { close(w.done) })
}

// tick renders one status line. It returns false when there is no
// active fast and watching should stop.
func (w *Watcher) tick() bool {
	active := w.service.ActiveFast()
	if active == nil {
		fmt.Fprintln(w.out, "No active fast.")
		return false
	}

	elapsed := w.service.ElapsedTime()
	remaining := w.service.RemainingTime()
	percent := w.service.CompletionPercentage()
	stageID := w.service.CurrentStage()

	if active.IsPaused {
		fmt.Fprintf(w.out, "\r[paused] elapsed %s", fasting.FormatClock(elapsed))
		return true
	}

	fmt.Fprintf(w.out, "\relapsed %s  remaining %s  %.1f%%",
		fasting.FormatClock(elapsed), fasting.FormatClock(remaining), percent)

	if stageID != w.lastStage {
		if stage, ok := fasting.StageByID(stageID); ok && w.lastStage != -1 {
			fmt.Fprintf(w.out, "\nEntered stage %d: %s\n", stage.ID, stage.Name)
		}
		w.lastStage = stageID
	}

	if remaining == 0 && !w.notified {
		fmt.Fprintf(w.out, "\nPlanned fast duration reached. Run \"fastwise end --completed\" to finish.\n")
		w.notified = true
	}

	return true
}
