package model

import "time"

// Protocol is a named fasting schedule: how long to fast and how long
// the eating window is. The catalog is static and read-only.
type Protocol struct {
	ID          string
	Name        string
	Description string
	FastHours   float64
	EatHours    float64
	Recommended bool
}

// Mood is a self-reported wellbeing rating.
type Mood string

const (
	MoodGreat   Mood = "great"
	MoodGood    Mood = "good"
	MoodNeutral Mood = "neutral"
	MoodPoor    Mood = "poor"
	MoodBad     Mood = "bad"
)

// Experience levels, stored on preferences and mirrored into stats.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Motivation styles used by the coach to personalize replies.
const (
	StyleScientific = "scientific"
	StyleEmotional  = "emotional"
	StylePractical  = "practical"
)

// Fast is one timed fasting session. At most one Fast is active at a
// time; once ended it becomes an immutable history record.
type Fast struct {
	ID             string
	ProtocolID     string
	StartTime      time.Time
	EndTime        *time.Time // nil while active
	PlannedEndTime time.Time  // shifted forward by accumulated pauses
	PausedTime     time.Duration
	IsPaused       bool
	PauseStartTime *time.Time // non-nil iff IsPaused
	Completed      bool
	Notes          string
	Symptoms       []string
	Energy         int  // 1-10, 0 when unset
	Mood           Mood // empty when unset
}

// Duration is the net fasting time of a finished fast, excluding pauses.
func (f *Fast) Duration() time.Duration {
	if f.EndTime == nil {
		return 0
	}
	return f.EndTime.Sub(f.StartTime) - f.PausedTime
}

// Stage is a physiological time-bucket of elapsed fasting hours.
// StartHour/EndHour form a half-open interval [start, end).
type Stage struct {
	ID          int
	Name        string
	StartHour   float64
	EndHour     float64 // +Inf for the terminal stage
	Description string
	Benefits    []string
	Tips        []string
	Symptoms    []string
}

// UserStats is the longitudinal aggregate over all finished fasts.
// It is only updated when a fast ends.
type UserStats struct {
	TotalFasts        int
	TotalFastingHours float64
	LongestFast       float64 // hours
	CurrentStreak     int
	CompletionRate    float64 // percentage
	ExperienceLevel   string
	MotivationStyle   string
}

// Chat message senders.
const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// ChatMessage is one entry in the append-only coach conversation log.
type ChatMessage struct {
	ID        string
	Sender    string
	Message   string
	Timestamp time.Time
}

// ProgressEntry is a self-reported journal entry, independent of any
// particular fast.
type ProgressEntry struct {
	Date     time.Time
	Weight   float64 // kg, 0 when unset
	Energy   int     // 1-10, 0 when unset
	Mood     Mood
	Sleep    float64 // hours, 0 when unset
	Notes    string
	Symptoms []string
}

// DietaryPreferences flags dietary restrictions on the user profile.
type DietaryPreferences struct {
	Vegetarian bool
	Vegan      bool
	GlutenFree bool
	DairyFree  bool
	Keto       bool
}

// UserPreferences is the stored user profile and app configuration.
type UserPreferences struct {
	Theme                        string
	DefaultProtocol              string
	Notifications                bool
	SafetyDisclaimerAcknowledged bool
	Dietary                      DietaryPreferences
	ExperienceLevel              string
	MotivationStyle              string
}

// DefaultPreferences returns the preferences used before the user has
// configured anything.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Theme:           "dark",
		DefaultProtocol: "16-8",
		Notifications:   true,
		ExperienceLevel: LevelBeginner,
		MotivationStyle: StyleScientific,
	}
}

// DefaultStats returns the zero-history stats for a new user.
func DefaultStats() UserStats {
	return UserStats{
		ExperienceLevel: LevelBeginner,
		MotivationStyle: StyleScientific,
	}
}
