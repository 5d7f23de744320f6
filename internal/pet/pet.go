package pet

import (
	"math/rand"
	"time"
)

// Testable time function
var TimeNow = func() time.Time { return time.Now().UTC() }

// Rand is the source of randomness for message selection and neglect rolls.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a Rand seeded from the current time.
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Mood is the pet's emotional state
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodExcited Mood = "excited"
	MoodTired   Mood = "tired"
	MoodSad     Mood = "sad"
	MoodNormal  Mood = "normal"
)

// Moods lists every mood in display order.
var Moods = []Mood{MoodHappy, MoodExcited, MoodTired, MoodSad, MoodNormal}

// ParseMood returns the mood named s, or false if s is not a mood.
func ParseMood(s string) (Mood, bool) {
	for _, m := range Moods {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// Stats holds the three bounded pet stats
type Stats struct {
	Happiness int `json:"happiness"`
	Energy    int `json:"energy"`
	Health    int `json:"health"`
}

// Average returns the real-valued mean of the three stats.
func (s Stats) Average() float64 {
	return float64(s.Happiness+s.Energy+s.Health) / 3
}

// Add applies the deltas and clamps every stat independently.
func (s Stats) Add(happiness, energy, health int) Stats {
	return Stats{
		Happiness: clamp(s.Happiness + happiness),
		Energy:    clamp(s.Energy + energy),
		Health:    clamp(s.Health + health),
	}
}

// Snapshot is the externally visible pet state at one instant.
// Callers always receive a copy.
type Snapshot struct {
	Stats     Stats     `json:"stats"`
	Color     string    `json:"color"`
	Mood      Mood      `json:"mood"`
	Message   string    `json:"message"`
	Version   uint64    `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSnapshot returns the starting state for a freshly created pet.
func NewSnapshot(color string) Snapshot {
	return Snapshot{
		Stats: Stats{
			Happiness: InitialHappiness,
			Energy:    InitialEnergy,
			Health:    InitialHealth,
		},
		Color:     color,
		Mood:      MoodNormal,
		Message:   GreetingMessage,
		UpdatedAt: TimeNow(),
	}
}

// LogEntry represents a mood change
type LogEntry struct {
	Time    time.Time `json:"time"`
	OldMood Mood      `json:"old_mood"`
	NewMood Mood      `json:"new_mood"`
	Cause   string    `json:"cause"`
}

func appendHistory(logs []LogEntry, entry LogEntry) []LogEntry {
	logs = append(logs, entry)
	if len(logs) > MaxHistory {
		logs = logs[len(logs)-MaxHistory:]
	}
	return logs
}

func clamp(v int) int {
	return max(MinStat, min(v, MaxStat))
}
