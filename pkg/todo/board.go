package todo

import (
	"suite/pkg/storage"
	"suite/pkg/utils"
)

// Board ties the repository, the streak and the badge set to one store and
// recomputes badges after every change.
type Board struct {
	store  storage.Store
	tasks  *Repository
	streak *Streak
	badges BadgeSet
}

// Load restores a board from store. Malformed values are logged and
// replaced by their defaults.
func Load(store storage.Store, opts ...Option) *Board {
	b := &Board{
		store:  store,
		streak: LoadStreak(store),
		badges: LoadBadges(store),
	}
	opts = append(opts, WithCompletionRecorder(b.streak))
	b.tasks = NewRepository(store, opts...)
	b.refreshBadges()
	return b
}

// Add creates a task; see Repository.Add.
func (b *Board) Add(text, due string, priority Priority, category string) (Task, bool) {
	t, ok := b.tasks.Add(text, due, priority, category)
	if ok {
		b.refreshBadges()
	}
	return t, ok
}

// Toggle flips completion; see Repository.Toggle.
func (b *Board) Toggle(id int64) (Task, bool) {
	t, ok := b.tasks.Toggle(id)
	if ok {
		b.refreshBadges()
	}
	return t, ok
}

// Edit updates a task; see Repository.Edit.
func (b *Board) Edit(id int64, text, due string, priority Priority, category string) (Task, bool) {
	t, ok := b.tasks.Edit(id, text, due, priority, category)
	if ok {
		b.refreshBadges()
	}
	return t, ok
}

// Remove deletes a task.
func (b *Board) Remove(id int64) bool {
	ok := b.tasks.Remove(id)
	if ok {
		b.refreshBadges()
	}
	return ok
}

// ClearAll deletes every task after confirmation.
func (b *Board) ClearAll(confirm Confirmer) bool {
	ok := b.tasks.ClearAll(confirm)
	if ok {
		b.refreshBadges()
	}
	return ok
}

// Import appends previously exported tasks.
func (b *Board) Import(tasks []Task) int {
	n := b.tasks.Import(tasks)
	if n > 0 {
		b.refreshBadges()
	}
	return n
}

func (b *Board) Get(id int64) (Task, bool) { return b.tasks.Get(id) }

// Tasks returns every task in insertion order.
func (b *Board) Tasks() []Task { return b.tasks.Tasks() }

// View runs the view pipeline over the current tasks.
func (b *Board) View(q Query) []Task {
	return View(b.tasks.tasks, q)
}

func (b *Board) Stats() Stats { return ComputeStats(b.tasks.tasks) }

func (b *Board) Streak() StreakState { return b.streak.State() }

// Badges returns the earned badges in the order they were earned.
func (b *Board) Badges() BadgeSet { return b.badges.Union(nil) }

func (b *Board) refreshBadges() {
	st := b.Stats()
	next := b.badges.Accumulate(Progress{
		Completed:  st.Completed,
		Streak:     b.streak.Count(),
		Categories: len(st.Categories),
	})
	if len(next) == len(b.badges) {
		return
	}
	for _, badge := range next[len(b.badges):] {
		utils.Log("Unlocked badge: %s", badge)
	}
	b.badges = next
	saveBadges(b.store, b.badges)
}
