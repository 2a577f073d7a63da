package testutil

import (
	"sync"

	"fastwise/internal/fasting"
	"fastwise/internal/model"
)

// MemStore is an in-memory fasting.Store for tests. It records every
// mutation so tests can assert on write-through behavior.
type MemStore struct {
	mu sync.Mutex

	ActiveFast  *model.Fast
	History     []*model.Fast
	StatsRecord model.UserStats
	ChatLog     []model.ChatMessage
	Journal     []model.ProgressEntry
	Prefs       model.UserPreferences

	SaveActiveCalls int
	FinalizeCalls   int
	Closed          bool
}

var _ fasting.Store = (*MemStore)(nil)

// NewMemStore creates an empty MemStore with default stats and preferences.
func NewMemStore() *MemStore {
	return &MemStore{
		StatsRecord: model.DefaultStats(),
		Prefs:       model.DefaultPreferences(),
	}
}

func (m *MemStore) Load() (*fasting.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &fasting.State{
		ActiveFast:  m.ActiveFast,
		History:     append([]*model.Fast{}, m.History...),
		Stats:       m.StatsRecord,
		ChatLog:     append([]model.ChatMessage{}, m.ChatLog...),
		Journal:     append([]model.ProgressEntry{}, m.Journal...),
		Preferences: m.Prefs,
	}, nil
}

func (m *MemStore) SaveActiveFast(fast *model.Fast) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ActiveFast = fast
	m.SaveActiveCalls++
	return nil
}

func (m *MemStore) FinalizeFast(finished *model.Fast, stats model.UserStats) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ActiveFast = nil
	m.History = append(m.History, finished)
	m.StatsRecord = stats
	m.FinalizeCalls++
	return nil
}

func (m *MemStore) AppendChatMessage(msg model.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChatLog = append(m.ChatLog, msg)
	return nil
}

func (m *MemStore) AppendProgressEntry(entry model.ProgressEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Journal = append(m.Journal, entry)
	return nil
}

func (m *MemStore) SavePreferences(prefs model.UserPreferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Prefs = prefs
	return nil
}

func (m *MemStore) SaveStats(stats model.UserStats) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatsRecord = stats
	return nil
}

func (m *MemStore) Replace(state *fasting.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ActiveFast = state.ActiveFast
	m.History = append([]*model.Fast{}, state.History...)
	m.StatsRecord = state.Stats
	m.ChatLog = append([]model.ChatMessage{}, state.ChatLog...)
	m.Journal = append([]model.ProgressEntry{}, state.Journal...)
	m.Prefs = state.Preferences
	return nil
}

func (m *MemStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}
