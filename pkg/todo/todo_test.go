package todo

import (
	"time"

	"suite/pkg/storage"
)

// fakeClock hands out increasing instants one second apart.
type fakeClock struct {
	t time.Time
}

func newFakeClock(day string) *fakeClock {
	t, err := time.ParseInLocation(DateLayout, day, time.UTC)
	if err != nil {
		panic(err)
	}
	return &fakeClock{t: t.Add(9 * time.Hour)}
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

// advanceDays moves the clock forward by n calendar days.
func (c *fakeClock) advanceDays(n int) {
	c.t = c.t.AddDate(0, 0, n)
}

func newBoard(day string) (*Board, *fakeClock, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	clock := newFakeClock(day)
	return Load(store, WithClock(clock.Now)), clock, store
}

type recorder struct {
	days []string
}

func (r *recorder) RecordCompletion(today time.Time) {
	r.days = append(r.days, today.Format(DateLayout))
}
