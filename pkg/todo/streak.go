package todo

import (
	"encoding/json"
	"time"

	"suite/pkg/storage"
	"suite/pkg/utils"
)

const (
	streakKey           = "streak"
	lastCompleteDateKey = "lastCompleteDate"

	// legacyDayLayout is how the browser build stored the last completion day.
	legacyDayLayout = "Mon Jan 02 2006"
)

// StreakState counts consecutive calendar days with at least one completion.
type StreakState struct {
	Count            int
	LastCompleteDate string // YYYY-MM-DD, empty when nothing was ever completed
}

// Streak drives StreakState from completion events and writes it through
// to the store.
type Streak struct {
	store storage.Store
	state StreakState
}

// CompletionRecorder is notified when a task becomes complete.
type CompletionRecorder interface {
	RecordCompletion(today time.Time)
}

// NewStreak returns a tracker with the given state.
func NewStreak(store storage.Store, state StreakState) *Streak {
	return &Streak{store: store, state: state}
}

// LoadStreak reads the persisted state. Missing or malformed values fall
// back to a zero streak.
func LoadStreak(store storage.Store) *Streak {
	var st StreakState
	storage.LoadJSON(store, streakKey, &st.Count)
	if st.Count < 0 {
		st.Count = 0
	}

	st.LastCompleteDate = loadDay(store, lastCompleteDateKey)
	return NewStreak(store, st)
}

// loadDay reads a day value. The browser build stored it unquoted, so a raw
// string is accepted as well as a JSON one.
func loadDay(store storage.Store, key string) string {
	raw, ok, err := store.Get(key)
	if err != nil {
		utils.Warn("failed to read key", "key", key, "error", err)
		return ""
	}
	if !ok || raw == "" {
		return ""
	}

	var quoted string
	if json.Unmarshal([]byte(raw), &quoted) == nil {
		raw = quoted
	}
	day, ok := parseDay(raw)
	if !ok {
		utils.Warn("ignoring unparseable day", "key", key, "value", raw)
		return ""
	}
	return day
}

// State returns a copy of the current state.
func (s *Streak) State() StreakState {
	return s.state
}

// Count is the current streak length in days.
func (s *Streak) Count() int {
	return s.state.Count
}

// RecordCompletion advances the streak for a completion on today's date.
// At most one increment happens per day; a gap of more than one day
// restarts the streak at 1.
func (s *Streak) RecordCompletion(today time.Time) {
	day := today.Format(DateLayout)
	if s.state.LastCompleteDate == day {
		return
	}

	yesterday := today.AddDate(0, 0, -1).Format(DateLayout)
	if s.state.LastCompleteDate == "" || s.state.LastCompleteDate == yesterday {
		s.state.Count++
	} else {
		s.state.Count = 1
	}
	s.state.LastCompleteDate = day
	utils.Log("Streak is now %d (last completion %s)", s.state.Count, day)

	s.save()
}

func (s *Streak) save() {
	if err := storage.SaveJSON(s.store, streakKey, s.state.Count); err != nil {
		utils.Warn("failed to persist streak", "error", err)
	}
	if s.state.LastCompleteDate == "" {
		return
	}
	if err := storage.SaveJSON(s.store, lastCompleteDateKey, s.state.LastCompleteDate); err != nil {
		utils.Warn("failed to persist last completion date", "error", err)
	}
}

// parseDay normalises a stored day to YYYY-MM-DD.
func parseDay(s string) (string, bool) {
	for _, layout := range []string{DateLayout, legacyDayLayout} {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format(DateLayout), true
		}
	}
	return "", false
}
