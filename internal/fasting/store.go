package fasting

import "fastwise/internal/model"

// State is the whole persisted snapshot loaded at startup.
type State struct {
	ActiveFast  *model.Fast // nil when idle
	History     []*model.Fast
	Stats       model.UserStats
	ChatLog     []model.ChatMessage
	Journal     []model.ProgressEntry
	Preferences model.UserPreferences
}

// Store is the persistence gateway. The engine writes through to it
// after every mutating operation; it is the only component that
// touches durable state. History, the chat log and the journal are
// append-only.
type Store interface {
	// Load returns the full persisted state. Missing records default
	// per the model package.
	Load() (*State, error)

	// SaveActiveFast upserts the single active-fast slot.
	SaveActiveFast(fast *model.Fast) error

	// FinalizeFast atomically clears the active slot, appends the
	// finished fast to history and saves the folded stats.
	FinalizeFast(finished *model.Fast, stats model.UserStats) error

	// AppendChatMessage appends to the conversation log.
	AppendChatMessage(msg model.ChatMessage) error

	// AppendProgressEntry appends to the progress journal.
	AppendProgressEntry(entry model.ProgressEntry) error

	// SavePreferences replaces the stored user preferences.
	SavePreferences(prefs model.UserPreferences) error

	// SaveStats replaces the stored user stats.
	SaveStats(stats model.UserStats) error

	// Replace overwrites all persisted state with the given snapshot.
	// Used by restore-from-export.
	Replace(state *State) error

	Close() error
}
