package fasting

import (
	"fmt"
	"sync"
	"time"

	"fastwise/internal/model"
)

// Service is the orchestration layer and the only entry point UI
// collaborators use. It owns the tracker, folds stats on end, routes
// coach replies, and writes every mutation through to the store.
//
// pause/resume/end read-then-write the active fast non-atomically, so
// a single mutex serializes all operations.
type Service struct {
	mu      sync.Mutex
	store   Store
	tracker *Tracker
	coach   *Coach
	logger  Logger
	clock   Clock
	idgen   IDGenerator

	history []*model.Fast
	stats   model.UserStats
	chatLog []model.ChatMessage
	journal []model.ProgressEntry
	prefs   model.UserPreferences
}

// NewService loads persisted state from store and returns a ready
// service. The caller must call Close when done.
func NewService(store Store, logger Logger, clock Clock, idgen IDGenerator, rand RandSource) (*Service, error) {
	state, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}

	tracker := NewTracker(clock, idgen)
	tracker.Restore(state.ActiveFast)

	return &Service{
		store:   store,
		tracker: tracker,
		coach:   NewCoach(clock, rand),
		logger:  logger,
		clock:   clock,
		idgen:   idgen,
		history: state.History,
		stats:   state.Stats,
		chatLog: state.ChatLog,
		journal: state.Journal,
		prefs:   state.Preferences,
	}, nil
}

// Close releases the underlying store.
func (s *Service) Close() error { return s.store.Close() }

// StartFast begins a fast on the given protocol. An empty id falls
// back to the preferred default protocol.
func (s *Service) StartFast(protocolID string) (*model.Fast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if protocolID == "" {
		protocolID = s.prefs.DefaultProtocol
	}

	fast, err := s.tracker.Start(protocolID)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveActiveFast(fast); err != nil {
		return nil, fmt.Errorf("saving active fast: %w", err)
	}

	s.logger.Info("fast started", "protocol", protocolID, "id", fast.ID)
	return fast, nil
}

// PauseFast freezes the active fast. Idempotent while paused.
func (s *Service) PauseFast() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tracker.Pause(); err != nil {
		return err
	}
	if err := s.store.SaveActiveFast(s.tracker.Active()); err != nil {
		return fmt.Errorf("saving active fast: %w", err)
	}
	s.logger.Info("fast paused")
	return nil
}

// ResumeFast ends a pause. Idempotent while running.
func (s *Service) ResumeFast() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tracker.Resume(); err != nil {
		return err
	}
	if err := s.store.SaveActiveFast(s.tracker.Active()); err != nil {
		return fmt.Errorf("saving active fast: %w", err)
	}
	s.logger.Info("fast resumed")
	return nil
}

// EndFast finalizes the active fast, folds it into the stats and
// appends it to history, all in one store transaction. Returns the
// finished record and the new stats.
func (s *Service) EndFast(completed bool) (*model.Fast, model.UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	finished, err := s.tracker.End(completed)
	if err != nil {
		return nil, model.UserStats{}, err
	}

	newStats := FoldStats(finished, s.history, s.stats)
	if err := s.store.FinalizeFast(finished, newStats); err != nil {
		return nil, model.UserStats{}, fmt.Errorf("finalizing fast: %w", err)
	}

	s.history = append(s.history, finished)
	s.stats = newStats

	s.logger.Info("fast ended",
		"id", finished.ID,
		"completed", completed,
		"duration_hours", fmt.Sprintf("%.2f", finished.Duration().Hours()))
	return finished, newStats, nil
}

// ActiveFast returns the active fast, or nil when idle.
func (s *Service) ActiveFast() *model.Fast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Active()
}

// ElapsedTime returns net fasting time; frozen while paused, 0 when idle.
func (s *Service) ElapsedTime() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Elapsed()
}

// RemainingTime returns time until the planned end, floored at zero.
// Not frozen while paused; stop polling during a pause.
func (s *Service) RemainingTime() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Remaining()
}

// CompletionPercentage returns progress toward the protocol target,
// capped at 100.
func (s *Service) CompletionPercentage() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.CompletionPercent()
}

// CurrentStage returns the current stage id, or 0 when idle.
func (s *Service) CurrentStage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.CurrentStage()
}

// AddChatMessage appends one message to the conversation log.
func (s *Service) AddChatMessage(text, sender string) (model.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendChat(text, sender)
}

// EnsureWelcome seeds the coach's greeting when the chat log is
// empty. Reports whether a message was added.
func (s *Service) EnsureWelcome() (model.ChatMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.chatLog) > 0 {
		return model.ChatMessage{}, false, nil
	}
	msg, err := s.appendChat(welcomeMessage, model.SenderAI)
	if err != nil {
		return model.ChatMessage{}, false, err
	}
	return msg, true, nil
}

// Respond records the user's message, generates the coach's reply and
// records that too. A reply is always produced.
func (s *Service) Respond(text string) (model.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.appendChat(text, model.SenderUser); err != nil {
		return model.ChatMessage{}, err
	}

	reply := s.coach.Respond(text, s.tracker.Active(), s.stats)
	msg, err := s.appendChat(reply, model.SenderAI)
	if err != nil {
		return model.ChatMessage{}, err
	}
	return msg, nil
}

func (s *Service) appendChat(text, sender string) (model.ChatMessage, error) {
	msg := model.ChatMessage{
		ID:        s.idgen.New(),
		Sender:    sender,
		Message:   text,
		Timestamp: s.clock.Now(),
	}
	if err := s.store.AppendChatMessage(msg); err != nil {
		return model.ChatMessage{}, fmt.Errorf("appending chat message: %w", err)
	}
	s.chatLog = append(s.chatLog, msg)
	return msg, nil
}

// AddProgressEntry appends a journal entry, stamping the date when unset.
func (s *Service) AddProgressEntry(entry model.ProgressEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.Date.IsZero() {
		entry.Date = s.clock.Now()
	}
	if err := s.store.AppendProgressEntry(entry); err != nil {
		return fmt.Errorf("appending progress entry: %w", err)
	}
	s.journal = append(s.journal, entry)
	return nil
}

// SetNotes replaces the notes on the active fast.
func (s *Service) SetNotes(notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tracker.SetNotes(notes); err != nil {
		return err
	}
	if err := s.store.SaveActiveFast(s.tracker.Active()); err != nil {
		return fmt.Errorf("saving active fast: %w", err)
	}
	return nil
}

// RecordCheckIn updates self-reported energy/mood/symptoms on the
// active fast. The coach reads these for its symptom addenda.
func (s *Service) RecordCheckIn(energy int, mood model.Mood, symptoms []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tracker.RecordCheckIn(energy, mood, symptoms); err != nil {
		return err
	}
	if err := s.store.SaveActiveFast(s.tracker.Active()); err != nil {
		return fmt.Errorf("saving active fast: %w", err)
	}
	return nil
}

// UpdateProfile sets experience level and motivation style on the
// preferences and mirrors them into the stored stats, which the coach
// reads from.
func (s *Service) UpdateProfile(experienceLevel, motivationStyle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if experienceLevel != "" {
		s.prefs.ExperienceLevel = experienceLevel
		s.stats.ExperienceLevel = experienceLevel
	}
	if motivationStyle != "" {
		s.prefs.MotivationStyle = motivationStyle
		s.stats.MotivationStyle = motivationStyle
	}

	if err := s.store.SavePreferences(s.prefs); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	if err := s.store.SaveStats(s.stats); err != nil {
		return fmt.Errorf("saving stats: %w", err)
	}
	s.logger.Info("profile updated", "level", s.prefs.ExperienceLevel, "style", s.prefs.MotivationStyle)
	return nil
}

// SeedDefaultPreferences applies configured profile defaults to a
// fresh database. It is a no-op once the stored preferences differ
// from the built-in defaults, so it never overrides an explicit
// profile update. Empty fields fall back to the built-in values.
func (s *Service) SeedDefaultPreferences(protocolID, experienceLevel, motivationStyle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.prefs != model.DefaultPreferences() {
		return nil
	}

	prefs := s.prefs
	if protocolID != "" {
		if _, ok := ProtocolByID(protocolID); !ok {
			return fmt.Errorf("default protocol %q: %w", protocolID, ErrUnknownProtocol)
		}
		prefs.DefaultProtocol = protocolID
	}
	if experienceLevel != "" {
		prefs.ExperienceLevel = experienceLevel
	}
	if motivationStyle != "" {
		prefs.MotivationStyle = motivationStyle
	}
	if prefs == s.prefs {
		return nil
	}

	s.prefs = prefs
	s.stats.ExperienceLevel = prefs.ExperienceLevel
	s.stats.MotivationStyle = prefs.MotivationStyle

	if err := s.store.SavePreferences(s.prefs); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	if err := s.store.SaveStats(s.stats); err != nil {
		return fmt.Errorf("saving stats: %w", err)
	}
	s.logger.Info("profile defaults applied",
		"protocol", prefs.DefaultProtocol, "level", prefs.ExperienceLevel, "style", prefs.MotivationStyle)
	return nil
}

// UpdatePreferences replaces the stored preferences wholesale and
// keeps the stats mirror in sync.
func (s *Service) UpdatePreferences(prefs model.UserPreferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs = prefs
	s.stats.ExperienceLevel = prefs.ExperienceLevel
	s.stats.MotivationStyle = prefs.MotivationStyle

	if err := s.store.SavePreferences(s.prefs); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	if err := s.store.SaveStats(s.stats); err != nil {
		return fmt.Errorf("saving stats: %w", err)
	}
	return nil
}

// Stats returns the current aggregate stats.
func (s *Service) Stats() model.UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// History returns all finished fasts, oldest first. Callers must not
// modify the returned records.
func (s *Service) History() []*model.Fast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history
}

// ChatHistory returns the conversation log, oldest first.
func (s *Service) ChatHistory() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chatLog
}

// Journal returns the progress journal, oldest first.
func (s *Service) Journal() []model.ProgressEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.journal
}

// Preferences returns the current user preferences.
func (s *Service) Preferences() model.UserPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}
