package fasting

import (
	"time"

	"fastwise/internal/model"
)

// Tracker owns the single active fast and its lifecycle:
// idle -> running <-> paused -> ended (back to idle).
//
// All derived metrics are computed from timestamps plus the
// accumulated pause time, never from a running counter, so they stay
// wall-clock accurate across process restarts. Tracker itself is not
// safe for concurrent use; the service serializes access to it.
type Tracker struct {
	clock  Clock
	idgen  IDGenerator
	active *model.Fast
}

// NewTracker creates a Tracker with no active fast.
func NewTracker(clock Clock, idgen IDGenerator) *Tracker {
	return &Tracker{clock: clock, idgen: idgen}
}

// Restore adopts a previously persisted active fast. Passing nil
// leaves the tracker idle.
func (t *Tracker) Restore(fast *model.Fast) { t.active = fast }

// Active returns the active fast, or nil when idle. The returned
// record is live; callers must not mutate it.
func (t *Tracker) Active() *model.Fast { return t.active }

// Start begins a new fast on the given protocol.
func (t *Tracker) Start(protocolID string) (*model.Fast, error) {
	if t.active != nil {
		return nil, ErrFastAlreadyActive
	}
	protocol, ok := ProtocolByID(protocolID)
	if !ok {
		return nil, ErrUnknownProtocol
	}

	now := t.clock.Now()
	t.active = &model.Fast{
		ID:             t.idgen.New(),
		ProtocolID:     protocolID,
		StartTime:      now,
		PlannedEndTime: now.Add(hoursToDuration(protocol.FastHours)),
	}
	return t.active, nil
}

// Pause freezes elapsed time. Pausing an already paused fast is a
// no-op and does not re-stamp the pause start.
func (t *Tracker) Pause() error {
	if t.active == nil {
		return ErrNoActiveFast
	}
	if t.active.IsPaused {
		return nil
	}
	now := t.clock.Now()
	t.active.IsPaused = true
	t.active.PauseStartTime = &now
	return nil
}

// Resume ends a pause, folding its duration into the accumulated
// pause time and pushing the planned end out by the same amount, so
// pauses never count against the protocol target. Resuming a running
// fast is a no-op.
func (t *Tracker) Resume() error {
	if t.active == nil {
		return ErrNoActiveFast
	}
	if !t.active.IsPaused {
		return nil
	}
	pauseDuration := t.clock.Now().Sub(*t.active.PauseStartTime)
	t.active.PausedTime += pauseDuration
	t.active.PlannedEndTime = t.active.PlannedEndTime.Add(pauseDuration)
	t.active.IsPaused = false
	t.active.PauseStartTime = nil
	return nil
}

// End finalizes the active fast with the given completion flag and
// returns it. The tracker goes idle; appending the record to history
// and folding stats are the caller's responsibility.
func (t *Tracker) End(completed bool) (*model.Fast, error) {
	if t.active == nil {
		return nil, ErrNoActiveFast
	}
	// An open pause ends with the fast.
	if t.active.IsPaused {
		if err := t.Resume(); err != nil {
			return nil, err
		}
	}
	now := t.clock.Now()
	ended := t.active
	ended.EndTime = &now
	ended.Completed = completed
	t.active = nil
	return ended, nil
}

// Elapsed returns net fasting time so far. While paused it is frozen
// at the pause instant. Returns 0 when idle.
func (t *Tracker) Elapsed() time.Duration {
	if t.active == nil {
		return 0
	}
	if t.active.IsPaused {
		return t.active.PauseStartTime.Sub(t.active.StartTime) - t.active.PausedTime
	}
	return t.clock.Now().Sub(t.active.StartTime) - t.active.PausedTime
}

// Remaining returns wall-clock time until the planned end, floored at
// zero. Unlike Elapsed it is NOT frozen while paused; callers are
// expected to stop polling during a pause. Returns 0 when idle.
func (t *Tracker) Remaining() time.Duration {
	if t.active == nil {
		return 0
	}
	remaining := t.active.PlannedEndTime.Sub(t.clock.Now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CompletionPercent returns elapsed time over the protocol target,
// capped at 100. A fast may run past its planned end; the percentage
// saturates rather than exceeding 100. Returns 0 when idle.
func (t *Tracker) CompletionPercent() float64 {
	if t.active == nil {
		return 0
	}
	protocol, ok := ProtocolByID(t.active.ProtocolID)
	if !ok {
		return 0
	}
	target := hoursToDuration(protocol.FastHours)
	pct := float64(t.Elapsed()) / float64(target) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// CurrentStage classifies the elapsed time into a physiological
// stage. Returns 0 when idle.
func (t *Tracker) CurrentStage() int {
	if t.active == nil {
		return 0
	}
	return ClassifyStage(t.Elapsed().Hours())
}

// SetNotes replaces the notes on the active fast.
func (t *Tracker) SetNotes(notes string) error {
	if t.active == nil {
		return ErrNoActiveFast
	}
	t.active.Notes = notes
	return nil
}

// RecordCheckIn updates the self-reported state on the active fast.
// Zero values leave the corresponding field unchanged; symptoms
// replace the previous set when non-nil.
func (t *Tracker) RecordCheckIn(energy int, mood model.Mood, symptoms []string) error {
	if t.active == nil {
		return ErrNoActiveFast
	}
	if energy != 0 {
		t.active.Energy = energy
	}
	if mood != "" {
		t.active.Mood = mood
	}
	if symptoms != nil {
		t.active.Symptoms = symptoms
	}
	return nil
}

func hoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}
