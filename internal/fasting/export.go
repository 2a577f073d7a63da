package fasting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"fastwise/internal/model"
)

// The export file is an encrypted JSON snapshot of the whole state.
// Field names and millisecond timestamps follow the persisted-record
// shapes, so an export is readable by any conforming gateway.

type fastSnapshot struct {
	ID             string   `json:"id"`
	ProtocolID     string   `json:"protocolId"`
	StartTime      int64    `json:"startTime"`
	EndTime        *int64   `json:"endTime"`
	PlannedEndTime int64    `json:"plannedEndTime"`
	PausedTimeMs   int64    `json:"pausedTime"`
	IsPaused       bool     `json:"isPaused"`
	PauseStartTime *int64   `json:"pauseStartTime"`
	Completed      bool     `json:"completed"`
	Notes          string   `json:"notes"`
	Symptoms       []string `json:"symptoms,omitempty"`
	Energy         int      `json:"energy,omitempty"`
	Mood           string   `json:"mood,omitempty"`
}

type chatSnapshot struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

type progressSnapshot struct {
	Date     int64    `json:"date"`
	Weight   float64  `json:"weight,omitempty"`
	Energy   int      `json:"energy,omitempty"`
	Mood     string   `json:"mood,omitempty"`
	Sleep    float64  `json:"sleep,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	Symptoms []string `json:"symptoms,omitempty"`
}

type statsSnapshot struct {
	TotalFasts        int     `json:"totalFasts"`
	TotalFastingHours float64 `json:"totalFastingHours"`
	LongestFast       float64 `json:"longestFast"`
	CurrentStreak     int     `json:"currentStreak"`
	CompletionRate    float64 `json:"completionRate"`
	ExperienceLevel   string  `json:"experienceLevel"`
	MotivationStyle   string  `json:"motivationStyle"`
}

type preferencesSnapshot struct {
	Theme                        string `json:"theme"`
	DefaultProtocol              string `json:"defaultProtocol"`
	Notifications                bool   `json:"notifications"`
	SafetyDisclaimerAcknowledged bool   `json:"safetyDisclaimerAcknowledged"`
	Vegetarian                   bool   `json:"vegetarian"`
	Vegan                        bool   `json:"vegan"`
	GlutenFree                   bool   `json:"glutenFree"`
	DairyFree                    bool   `json:"dairyFree"`
	Keto                         bool   `json:"keto"`
	ExperienceLevel              string `json:"experienceLevel"`
	MotivationStyle              string `json:"motivationStyle"`
}

type stateSnapshot struct {
	Version     int                  `json:"version"`
	ExportedAt  int64                `json:"exportedAt"`
	ActiveFast  *fastSnapshot        `json:"activeFast"`
	History     []fastSnapshot       `json:"history"`
	Stats       statsSnapshot        `json:"stats"`
	ChatLog     []chatSnapshot       `json:"chatLog"`
	Journal     []progressSnapshot   `json:"journal"`
	Preferences *preferencesSnapshot `json:"preferences"`
}

const snapshotVersion = 1

// Export writes an encrypted snapshot of all user data to w.
func (s *Service) Export(w io.Writer, enc Encryptor) error {
	s.mu.Lock()
	snap := stateSnapshot{
		Version:     snapshotVersion,
		ExportedAt:  s.clock.Now().UnixMilli(),
		ActiveFast:  fastToSnapshot(s.tracker.Active()),
		History:     make([]fastSnapshot, 0, len(s.history)),
		Stats:       statsSnapshot(s.stats),
		ChatLog:     make([]chatSnapshot, 0, len(s.chatLog)),
		Journal:     make([]progressSnapshot, 0, len(s.journal)),
		Preferences: prefsToSnapshot(s.prefs),
	}
	for _, f := range s.history {
		snap.History = append(snap.History, *fastToSnapshot(f))
	}
	for _, m := range s.chatLog {
		snap.ChatLog = append(snap.ChatLog, chatSnapshot{
			ID: m.ID, Sender: m.Sender, Message: m.Message, Timestamp: m.Timestamp.UnixMilli(),
		})
	}
	for _, e := range s.journal {
		snap.Journal = append(snap.Journal, progressSnapshot{
			Date: e.Date.UnixMilli(), Weight: e.Weight, Energy: e.Energy,
			Mood: string(e.Mood), Sleep: e.Sleep, Notes: e.Notes, Symptoms: e.Symptoms,
		})
	}
	s.mu.Unlock()

	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := enc.Encrypt(bytes.NewReader(payload), w); err != nil {
		return fmt.Errorf("encrypting snapshot: %w", err)
	}
	s.logger.Info("state exported", "history", len(snap.History), "chat", len(snap.ChatLog))
	return nil
}

// Restore decrypts a snapshot from r and replaces all persisted and
// in-memory state with it.
func (s *Service) Restore(r io.Reader, dec DecryptionContext) error {
	var payload bytes.Buffer
	if err := dec.Decrypt(r, &payload); err != nil {
		return fmt.Errorf("decrypting snapshot: %w", err)
	}

	var snap stateSnapshot
	if err := json.Unmarshal(payload.Bytes(), &snap); err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}

	state := &State{
		ActiveFast: snapshotToFast(snap.ActiveFast),
		Stats:      model.UserStats(snap.Stats),
	}
	for i := range snap.History {
		state.History = append(state.History, snapshotToFast(&snap.History[i]))
	}
	for _, m := range snap.ChatLog {
		state.ChatLog = append(state.ChatLog, model.ChatMessage{
			ID: m.ID, Sender: m.Sender, Message: m.Message, Timestamp: time.UnixMilli(m.Timestamp),
		})
	}
	for _, e := range snap.Journal {
		state.Journal = append(state.Journal, model.ProgressEntry{
			Date: time.UnixMilli(e.Date), Weight: e.Weight, Energy: e.Energy,
			Mood: model.Mood(e.Mood), Sleep: e.Sleep, Notes: e.Notes, Symptoms: e.Symptoms,
		})
	}
	if snap.Preferences != nil {
		state.Preferences = snapshotToPrefs(*snap.Preferences)
	} else {
		state.Preferences = model.DefaultPreferences()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Replace(state); err != nil {
		return fmt.Errorf("replacing state: %w", err)
	}

	s.tracker.Restore(state.ActiveFast)
	s.history = state.History
	s.stats = state.Stats
	s.chatLog = state.ChatLog
	s.journal = state.Journal
	s.prefs = state.Preferences

	s.logger.Info("state restored", "history", len(state.History), "chat", len(state.ChatLog))
	return nil
}

func fastToSnapshot(f *model.Fast) *fastSnapshot {
	if f == nil {
		return nil
	}
	snap := &fastSnapshot{
		ID:             f.ID,
		ProtocolID:     f.ProtocolID,
		StartTime:      f.StartTime.UnixMilli(),
		PlannedEndTime: f.PlannedEndTime.UnixMilli(),
		PausedTimeMs:   f.PausedTime.Milliseconds(),
		IsPaused:       f.IsPaused,
		Completed:      f.Completed,
		Notes:          f.Notes,
		Symptoms:       f.Symptoms,
		Energy:         f.Energy,
		Mood:           string(f.Mood),
	}
	if f.EndTime != nil {
		ms := f.EndTime.UnixMilli()
		snap.EndTime = &ms
	}
	if f.PauseStartTime != nil {
		ms := f.PauseStartTime.UnixMilli()
		snap.PauseStartTime = &ms
	}
	return snap
}

func snapshotToFast(snap *fastSnapshot) *model.Fast {
	if snap == nil {
		return nil
	}
	f := &model.Fast{
		ID:             snap.ID,
		ProtocolID:     snap.ProtocolID,
		StartTime:      time.UnixMilli(snap.StartTime),
		PlannedEndTime: time.UnixMilli(snap.PlannedEndTime),
		PausedTime:     time.Duration(snap.PausedTimeMs) * time.Millisecond,
		IsPaused:       snap.IsPaused,
		Completed:      snap.Completed,
		Notes:          snap.Notes,
		Symptoms:       snap.Symptoms,
		Energy:         snap.Energy,
		Mood:           model.Mood(snap.Mood),
	}
	if snap.EndTime != nil {
		t := time.UnixMilli(*snap.EndTime)
		f.EndTime = &t
	}
	if snap.PauseStartTime != nil {
		t := time.UnixMilli(*snap.PauseStartTime)
		f.PauseStartTime = &t
	}
	return f
}

func prefsToSnapshot(p model.UserPreferences) *preferencesSnapshot {
	return &preferencesSnapshot{
		Theme:                        p.Theme,
		DefaultProtocol:              p.DefaultProtocol,
		Notifications:                p.Notifications,
		SafetyDisclaimerAcknowledged: p.SafetyDisclaimerAcknowledged,
		Vegetarian:                   p.Dietary.Vegetarian,
		Vegan:                        p.Dietary.Vegan,
		GlutenFree:                   p.Dietary.GlutenFree,
		DairyFree:                    p.Dietary.DairyFree,
		Keto:                         p.Dietary.Keto,
		ExperienceLevel:              p.ExperienceLevel,
		MotivationStyle:              p.MotivationStyle,
	}
}

func snapshotToPrefs(snap preferencesSnapshot) model.UserPreferences {
	return model.UserPreferences{
		Theme:                        snap.Theme,
		DefaultProtocol:              snap.DefaultProtocol,
		Notifications:                snap.Notifications,
		SafetyDisclaimerAcknowledged: snap.SafetyDisclaimerAcknowledged,
		Dietary: model.DietaryPreferences{
			Vegetarian: snap.Vegetarian,
			Vegan:      snap.Vegan,
			GlutenFree: snap.GlutenFree,
			DairyFree:  snap.DairyFree,
			Keto:       snap.Keto,
		},
		ExperienceLevel: snap.ExperienceLevel,
		MotivationStyle: snap.MotivationStyle,
	}
}
