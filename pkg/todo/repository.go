package todo

import (
	"slices"
	"strings"
	"time"

	"suite/pkg/storage"
	"suite/pkg/utils"
)

const tasksKey = "tasks"

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// ClearAllPrompt is the question asked before every task is deleted.
const ClearAllPrompt = "Are you sure you want to delete all tasks?"

// Option configures a Repository or Board.
type Option func(*options)

type options struct {
	now      func() time.Time
	recorder CompletionRecorder
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithCompletionRecorder sets the receiver of incomplete→complete edges.
func WithCompletionRecorder(r CompletionRecorder) Option {
	return func(o *options) { o.recorder = r }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Repository is the ordered task collection. Every mutation writes the
// whole collection back to the store.
type Repository struct {
	store    storage.Store
	tasks    []Task
	lastID   int64
	now      func() time.Time
	recorder CompletionRecorder
}

// NewRepository loads the persisted tasks from store.
func NewRepository(store storage.Store, opts ...Option) *Repository {
	o := buildOptions(opts)
	r := &Repository{store: store, now: o.now, recorder: o.recorder}

	var tasks []Task
	storage.LoadJSON(store, tasksKey, &tasks)
	for i := range tasks {
		if tasks[i].Priority == "" {
			tasks[i].Priority = PriorityMedium
		}
		r.lastID = max(r.lastID, tasks[i].ID)
	}
	r.tasks = tasks
	utils.Log("Loaded %d tasks from store", len(tasks))
	return r
}

// Tasks returns a copy of the collection in insertion order.
func (r *Repository) Tasks() []Task {
	return slices.Clone(r.tasks)
}

// Len is the number of tasks.
func (r *Repository) Len() int {
	return len(r.tasks)
}

// Get looks up a task by id.
func (r *Repository) Get(id int64) (Task, bool) {
	if i := r.index(id); i >= 0 {
		return r.tasks[i], true
	}
	return Task{}, false
}

// Add appends a new task. Whitespace-only text, an unknown priority or a
// malformed due date reject the call without touching the collection.
func (r *Repository) Add(text, due string, priority Priority, category string) (Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false
	}
	if priority == "" {
		priority = PriorityMedium
	}

	now := r.now()
	task := Task{
		ID:        r.nextID(now),
		Text:      text,
		Due:       strings.TrimSpace(due),
		Priority:  priority,
		Category:  strings.TrimSpace(category),
		CreatedAt: now,
	}
	if err := task.Validate(); err != nil {
		utils.Log("Rejected task %q: %v", text, err)
		return Task{}, false
	}

	r.tasks = append(r.tasks, task)
	r.lastID = task.ID
	utils.Log("Added task: %d", task.ID)
	r.persist()
	return task, true
}

// Toggle flips completion of the task with id. Unknown ids are ignored.
// Only the incomplete→complete edge reaches the completion recorder.
func (r *Repository) Toggle(id int64) (Task, bool) {
	i := r.index(id)
	if i < 0 {
		return Task{}, false
	}

	r.tasks[i].Completed = !r.tasks[i].Completed
	task := r.tasks[i]
	r.persist()

	if task.Completed && r.recorder != nil {
		r.recorder.RecordCompletion(r.now())
	}
	return task, true
}

// Edit replaces the editable fields of the task with id in place. The id,
// completion flag and creation time are kept.
func (r *Repository) Edit(id int64, text, due string, priority Priority, category string) (Task, bool) {
	i := r.index(id)
	if i < 0 {
		return Task{}, false
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false
	}
	if priority == "" {
		priority = PriorityMedium
	}

	task := r.tasks[i]
	task.Text = text
	task.Due = strings.TrimSpace(due)
	task.Priority = priority
	task.Category = strings.TrimSpace(category)
	if err := task.Validate(); err != nil {
		utils.Log("Rejected edit of task %d: %v", id, err)
		return Task{}, false
	}

	r.tasks[i] = task
	utils.Log("Updated task: %d", id)
	r.persist()
	return task, true
}

// Remove deletes the task with id.
func (r *Repository) Remove(id int64) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	r.tasks = slices.Delete(r.tasks, i, i+1)
	utils.Log("Deleted task: %d", id)
	r.persist()
	return true
}

// ClearAll deletes every task once confirm approves.
func (r *Repository) ClearAll(confirm Confirmer) bool {
	if confirm == nil || !confirm.Confirm(ClearAllPrompt) {
		return false
	}
	r.tasks = []Task{}
	utils.Log("Cleared all tasks")
	r.persist()
	return true
}

// Import appends tasks as-is, keeping their ids unless one is already
// taken, in which case a fresh id is assigned.
func (r *Repository) Import(tasks []Task) int {
	added := 0
	for _, t := range tasks {
		t.Text = strings.TrimSpace(t.Text)
		if t.Priority == "" {
			t.Priority = PriorityMedium
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = r.now()
		}
		if t.ID == 0 || r.index(t.ID) >= 0 {
			t.ID = r.nextID(t.CreatedAt)
		}
		if err := t.Validate(); err != nil {
			utils.Log("Skipped imported task %q: %v", t.Text, err)
			continue
		}
		r.tasks = append(r.tasks, t)
		r.lastID = max(r.lastID, t.ID)
		added++
	}
	if added > 0 {
		r.persist()
	}
	return added
}

func (r *Repository) index(id int64) int {
	return slices.IndexFunc(r.tasks, func(t Task) bool { return t.ID == id })
}

// nextID uses the creation time in milliseconds, bumped past the last
// issued id so ids stay unique within one millisecond.
func (r *Repository) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	return id
}

func (r *Repository) persist() {
	if err := storage.SaveJSON(r.store, tasksKey, r.tasks); err != nil {
		utils.Warn("failed to persist tasks", "error", err)
	}
}
