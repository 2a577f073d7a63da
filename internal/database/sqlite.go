package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"fastwise/internal/database/migrations"
	"fastwise/internal/fasting"
	"fastwise/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements the fasting.Store interface using SQLite.
// The active fast, stats and preferences are single-slot rows; the
// history, chat log and journal are append-only tables ordered by an
// autoincrement sequence.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and migrates) a SQLite store.
// path can be a file path or ":memory:" for an in-memory database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	// Every pooled connection to ":memory:" gets its own empty
	// database, so pin the pool to a single connection.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := migrations.MigrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// OpenConnection opens and configures a SQLite connection with the
// appropriate PRAGMAs. Exported for tools and tests that need a
// properly configured connection.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign key constraints (SQLite default is OFF for backward compatibility)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

// Load reads the whole persisted state. Absent rows default per the
// model package.
func (s *SQLiteStore) Load() (*fasting.State, error) {
	state := &fasting.State{
		Stats:       model.DefaultStats(),
		Preferences: model.DefaultPreferences(),
	}

	active, err := s.loadActiveFast()
	if err != nil {
		return nil, err
	}
	state.ActiveFast = active

	if state.History, err = s.loadHistory(); err != nil {
		return nil, err
	}
	if state.ChatLog, err = s.loadChatLog(); err != nil {
		return nil, err
	}
	if state.Journal, err = s.loadJournal(); err != nil {
		return nil, err
	}

	if err := s.loadStats(&state.Stats); err != nil {
		return nil, err
	}
	if err := s.loadPreferences(&state.Preferences); err != nil {
		return nil, err
	}

	return state, nil
}

// SaveActiveFast upserts the single active-fast slot. A nil fast
// clears the slot.
func (s *SQLiteStore) SaveActiveFast(fast *model.Fast) error {
	if fast == nil {
		if _, err := s.db.Exec("DELETE FROM active_fast"); err != nil {
			return fmt.Errorf("clearing active fast: %w", err)
		}
		return nil
	}
	return upsertActiveFast(s.db, fast)
}

// FinalizeFast atomically clears the active slot, appends the
// finished fast to history and saves the folded stats.
func (s *SQLiteStore) FinalizeFast(finished *model.Fast, stats model.UserStats) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM active_fast"); err != nil {
		return fmt.Errorf("clearing active fast: %w", err)
	}
	if err := insertHistory(tx, finished); err != nil {
		return err
	}
	if err := upsertStats(tx, stats); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// AppendChatMessage appends one message to the conversation log.
func (s *SQLiteStore) AppendChatMessage(msg model.ChatMessage) error {
	_, err := s.db.Exec(
		"INSERT INTO chat_log (id, sender, message, timestamp) VALUES (?, ?, ?, ?)",
		msg.ID, msg.Sender, msg.Message, msg.Timestamp.UnixMilli())
	if err != nil {
		return fmt.Errorf("inserting chat message: %w", err)
	}
	return nil
}

// AppendProgressEntry appends one journal entry.
func (s *SQLiteStore) AppendProgressEntry(entry model.ProgressEntry) error {
	symptoms, err := encodeSymptoms(entry.Symptoms)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		"INSERT INTO progress_journal (date, weight, energy, mood, sleep, notes, symptoms) VALUES (?, ?, ?, ?, ?, ?, ?)",
		entry.Date.UnixMilli(), entry.Weight, entry.Energy, string(entry.Mood), entry.Sleep, entry.Notes, symptoms)
	if err != nil {
		return fmt.Errorf("inserting progress entry: %w", err)
	}
	return nil
}

// SavePreferences replaces the stored user preferences.
func (s *SQLiteStore) SavePreferences(prefs model.UserPreferences) error {
	return upsertPreferences(s.db, prefs)
}

// SaveStats replaces the stored user stats.
func (s *SQLiteStore) SaveStats(stats model.UserStats) error {
	return upsertStats(s.db, stats)
}

// Replace overwrites all persisted state with the given snapshot in a
// single transaction.
func (s *SQLiteStore) Replace(state *fasting.State) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"active_fast", "fast_history", "chat_log", "progress_journal", "user_stats", "user_preferences"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if state.ActiveFast != nil {
		if err := upsertActiveFast(tx, state.ActiveFast); err != nil {
			return err
		}
	}
	for _, f := range state.History {
		if err := insertHistory(tx, f); err != nil {
			return err
		}
	}
	for _, msg := range state.ChatLog {
		if _, err := tx.Exec(
			"INSERT INTO chat_log (id, sender, message, timestamp) VALUES (?, ?, ?, ?)",
			msg.ID, msg.Sender, msg.Message, msg.Timestamp.UnixMilli()); err != nil {
			return fmt.Errorf("inserting chat message: %w", err)
		}
	}
	for _, entry := range state.Journal {
		symptoms, err := encodeSymptoms(entry.Symptoms)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(
			"INSERT INTO progress_journal (date, weight, energy, mood, sleep, notes, symptoms) VALUES (?, ?, ?, ?, ?, ?, ?)",
			entry.Date.UnixMilli(), entry.Weight, entry.Energy, string(entry.Mood), entry.Sleep, entry.Notes, symptoms); err != nil {
			return fmt.Errorf("inserting progress entry: %w", err)
		}
	}
	if err := upsertStats(tx, state.Stats); err != nil {
		return err
	}
	if err := upsertPreferences(tx, state.Preferences); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// execer covers *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func upsertActiveFast(e execer, fast *model.Fast) error {
	symptoms, err := encodeSymptoms(fast.Symptoms)
	if err != nil {
		return err
	}
	_, err = e.Exec(`INSERT INTO active_fast
		(slot, id, protocol_id, start_time, end_time, planned_end_time, paused_time_ms, is_paused, pause_start_time, completed, notes, symptoms, energy, mood)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			id = excluded.id,
			protocol_id = excluded.protocol_id,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			planned_end_time = excluded.planned_end_time,
			paused_time_ms = excluded.paused_time_ms,
			is_paused = excluded.is_paused,
			pause_start_time = excluded.pause_start_time,
			completed = excluded.completed,
			notes = excluded.notes,
			symptoms = excluded.symptoms,
			energy = excluded.energy,
			mood = excluded.mood`,
		fast.ID, fast.ProtocolID, fast.StartTime.UnixMilli(), nullableMillis(fast.EndTime),
		fast.PlannedEndTime.UnixMilli(), fast.PausedTime.Milliseconds(), fast.IsPaused,
		nullableMillis(fast.PauseStartTime), fast.Completed, fast.Notes, symptoms, fast.Energy, string(fast.Mood))
	if err != nil {
		return fmt.Errorf("upserting active fast: %w", err)
	}
	return nil
}

func insertHistory(e execer, fast *model.Fast) error {
	if fast.EndTime == nil {
		return fmt.Errorf("history fast %s has no end time", fast.ID)
	}
	symptoms, err := encodeSymptoms(fast.Symptoms)
	if err != nil {
		return err
	}
	_, err = e.Exec(`INSERT INTO fast_history
		(id, protocol_id, start_time, end_time, planned_end_time, paused_time_ms, completed, notes, symptoms, energy, mood)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		fast.ID, fast.ProtocolID, fast.StartTime.UnixMilli(), fast.EndTime.UnixMilli(),
		fast.PlannedEndTime.UnixMilli(), fast.PausedTime.Milliseconds(), fast.Completed,
		fast.Notes, symptoms, fast.Energy, string(fast.Mood))
	if err != nil {
		return fmt.Errorf("inserting history fast: %w", err)
	}
	return nil
}

func upsertStats(e execer, stats model.UserStats) error {
	_, err := e.Exec(`INSERT INTO user_stats
		(slot, total_fasts, total_fasting_hours, longest_fast, current_streak, completion_rate, experience_level, motivation_style)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			total_fasts = excluded.total_fasts,
			total_fasting_hours = excluded.total_fasting_hours,
			longest_fast = excluded.longest_fast,
			current_streak = excluded.current_streak,
			completion_rate = excluded.completion_rate,
			experience_level = excluded.experience_level,
			motivation_style = excluded.motivation_style`,
		stats.TotalFasts, stats.TotalFastingHours, stats.LongestFast,
		stats.CurrentStreak, stats.CompletionRate, stats.ExperienceLevel, stats.MotivationStyle)
	if err != nil {
		return fmt.Errorf("upserting stats: %w", err)
	}
	return nil
}

func upsertPreferences(e execer, prefs model.UserPreferences) error {
	_, err := e.Exec(`INSERT INTO user_preferences
		(slot, theme, default_protocol, notifications, safety_disclaimer_acknowledged, vegetarian, vegan, gluten_free, dairy_free, keto, experience_level, motivation_style)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			theme = excluded.theme,
			default_protocol = excluded.default_protocol,
			notifications = excluded.notifications,
			safety_disclaimer_acknowledged = excluded.safety_disclaimer_acknowledged,
			vegetarian = excluded.vegetarian,
			vegan = excluded.vegan,
			gluten_free = excluded.gluten_free,
			dairy_free = excluded.dairy_free,
			keto = excluded.keto,
			experience_level = excluded.experience_level,
			motivation_style = excluded.motivation_style`,
		prefs.Theme, prefs.DefaultProtocol, prefs.Notifications, prefs.SafetyDisclaimerAcknowledged,
		prefs.Dietary.Vegetarian, prefs.Dietary.Vegan, prefs.Dietary.GlutenFree,
		prefs.Dietary.DairyFree, prefs.Dietary.Keto, prefs.ExperienceLevel, prefs.MotivationStyle)
	if err != nil {
		return fmt.Errorf("upserting preferences: %w", err)
	}
	return nil
}

func (s *SQLiteStore) loadActiveFast() (*model.Fast, error) {
	row := s.db.QueryRow(`SELECT id, protocol_id, start_time, end_time, planned_end_time, paused_time_ms,
		is_paused, pause_start_time, completed, notes, symptoms, energy, mood FROM active_fast WHERE slot = 1`)

	var (
		fast           model.Fast
		startMs        int64
		endMs          sql.NullInt64
		plannedMs      int64
		pausedMs       int64
		pauseStartMs   sql.NullInt64
		symptomsColumn string
		mood           string
	)
	err := row.Scan(&fast.ID, &fast.ProtocolID, &startMs, &endMs, &plannedMs, &pausedMs,
		&fast.IsPaused, &pauseStartMs, &fast.Completed, &fast.Notes, &symptomsColumn, &fast.Energy, &mood)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("loading active fast: %w", err)
	}

	fast.StartTime = time.UnixMilli(startMs)
	fast.PlannedEndTime = time.UnixMilli(plannedMs)
	fast.PausedTime = time.Duration(pausedMs) * time.Millisecond
	fast.EndTime = millisPtr(endMs)
	fast.PauseStartTime = millisPtr(pauseStartMs)
	fast.Mood = model.Mood(mood)
	if fast.Symptoms, err = decodeSymptoms(symptomsColumn); err != nil {
		return nil, err
	}
	return &fast, nil
}

func (s *SQLiteStore) loadHistory() ([]*model.Fast, error) {
	rows, err := s.db.Query(`SELECT id, protocol_id, start_time, end_time, planned_end_time, paused_time_ms,
		completed, notes, symptoms, energy, mood FROM fast_history ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	defer rows.Close()

	var history []*model.Fast
	for rows.Next() {
		var (
			fast           model.Fast
			startMs        int64
			endMs          int64
			plannedMs      int64
			pausedMs       int64
			symptomsColumn string
			mood           string
		)
		if err := rows.Scan(&fast.ID, &fast.ProtocolID, &startMs, &endMs, &plannedMs, &pausedMs,
			&fast.Completed, &fast.Notes, &symptomsColumn, &fast.Energy, &mood); err != nil {
			return nil, fmt.Errorf("scanning history fast: %w", err)
		}
		fast.StartTime = time.UnixMilli(startMs)
		end := time.UnixMilli(endMs)
		fast.EndTime = &end
		fast.PlannedEndTime = time.UnixMilli(plannedMs)
		fast.PausedTime = time.Duration(pausedMs) * time.Millisecond
		fast.Mood = model.Mood(mood)
		if fast.Symptoms, err = decodeSymptoms(symptomsColumn); err != nil {
			return nil, err
		}
		history = append(history, &fast)
	}
	return history, rows.Err()
}

func (s *SQLiteStore) loadChatLog() ([]model.ChatMessage, error) {
	rows, err := s.db.Query("SELECT id, sender, message, timestamp FROM chat_log ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("loading chat log: %w", err)
	}
	defer rows.Close()

	var log []model.ChatMessage
	for rows.Next() {
		var (
			msg model.ChatMessage
			ms  int64
		)
		if err := rows.Scan(&msg.ID, &msg.Sender, &msg.Message, &ms); err != nil {
			return nil, fmt.Errorf("scanning chat message: %w", err)
		}
		msg.Timestamp = time.UnixMilli(ms)
		log = append(log, msg)
	}
	return log, rows.Err()
}

func (s *SQLiteStore) loadJournal() ([]model.ProgressEntry, error) {
	rows, err := s.db.Query("SELECT date, weight, energy, mood, sleep, notes, symptoms FROM progress_journal ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("loading journal: %w", err)
	}
	defer rows.Close()

	var journal []model.ProgressEntry
	for rows.Next() {
		var (
			entry          model.ProgressEntry
			dateMs         int64
			mood           string
			symptomsColumn string
		)
		if err := rows.Scan(&dateMs, &entry.Weight, &entry.Energy, &mood, &entry.Sleep, &entry.Notes, &symptomsColumn); err != nil {
			return nil, fmt.Errorf("scanning progress entry: %w", err)
		}
		entry.Date = time.UnixMilli(dateMs)
		entry.Mood = model.Mood(mood)
		if entry.Symptoms, err = decodeSymptoms(symptomsColumn); err != nil {
			return nil, err
		}
		journal = append(journal, entry)
	}
	return journal, rows.Err()
}

func (s *SQLiteStore) loadStats(stats *model.UserStats) error {
	row := s.db.QueryRow(`SELECT total_fasts, total_fasting_hours, longest_fast, current_streak,
		completion_rate, experience_level, motivation_style FROM user_stats WHERE slot = 1`)
	err := row.Scan(&stats.TotalFasts, &stats.TotalFastingHours, &stats.LongestFast,
		&stats.CurrentStreak, &stats.CompletionRate, &stats.ExperienceLevel, &stats.MotivationStyle)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil // defaults stand
		}
		return fmt.Errorf("loading stats: %w", err)
	}
	return nil
}

func (s *SQLiteStore) loadPreferences(prefs *model.UserPreferences) error {
	row := s.db.QueryRow(`SELECT theme, default_protocol, notifications, safety_disclaimer_acknowledged,
		vegetarian, vegan, gluten_free, dairy_free, keto, experience_level, motivation_style
		FROM user_preferences WHERE slot = 1`)
	err := row.Scan(&prefs.Theme, &prefs.DefaultProtocol, &prefs.Notifications, &prefs.SafetyDisclaimerAcknowledged,
		&prefs.Dietary.Vegetarian, &prefs.Dietary.Vegan, &prefs.Dietary.GlutenFree,
		&prefs.Dietary.DairyFree, &prefs.Dietary.Keto, &prefs.ExperienceLevel, &prefs.MotivationStyle)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil // defaults stand
		}
		return fmt.Errorf("loading preferences: %w", err)
	}
	return nil
}

func encodeSymptoms(symptoms []string) (string, error) {
	if len(symptoms) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(symptoms)
	if err != nil {
		return "", fmt.Errorf("encoding symptoms: %w", err)
	}
	return string(data), nil
}

func decodeSymptoms(column string) ([]string, error) {
	if column == "" || column == "[]" {
		return nil, nil
	}
	var symptoms []string
	if err := json.Unmarshal([]byte(column), &symptoms); err != nil {
		return nil, fmt.Errorf("decoding symptoms: %w", err)
	}
	return symptoms, nil
}

func nullableMillis(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UnixMilli()
}

func millisPtr(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.UnixMilli(v.Int64)
	return &t
}
