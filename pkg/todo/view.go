package todo

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// TaskFilter represents the status filter of the view.
type TaskFilter int

const (
	AllTasksFilter       TaskFilter = iota // Show all tasks regardless of status
	CompletedTasksFilter                   // Show only completed tasks
	PendingTasksFilter                     // Show only uncompleted tasks
)

func (f TaskFilter) String() string {
	switch f {
	case CompletedTasksFilter:
		return "completed"
	case PendingTasksFilter:
		return "pending"
	default:
		return "all"
	}
}

// ParseFilter maps all/completed/pending (and done/undone) to a filter.
func ParseFilter(s string) (TaskFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return AllTasksFilter, nil
	case "completed", "done":
		return CompletedTasksFilter, nil
	case "pending", "undone":
		return PendingTasksFilter, nil
	}
	return AllTasksFilter, fmt.Errorf("unknown filter %q (want all, completed or pending)", s)
}

// Query is the input of the view pipeline.
type Query struct {
	Search string
	Filter TaskFilter
}

// Matches reports whether t passes the search and status filter.
func (q Query) Matches(t Task) bool {
	if q.Search != "" && !strings.Contains(strings.ToLower(t.Text), strings.ToLower(q.Search)) {
		return false
	}
	switch q.Filter {
	case CompletedTasksFilter:
		return t.Completed
	case PendingTasksFilter:
		return !t.Completed
	}
	return true
}

// View filters and sorts tasks for display. The input is not modified.
func View(tasks []Task, q Query) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if q.Matches(t) {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, Compare)
	return out
}

// Compare orders by priority (high first). Within a priority, two tasks
// that both have distinct due dates are ordered by due date; every other
// pair falls back to newest creation first. The fallback does not always
// compose transitively with the due date comparison when due dates are
// partially missing.
func Compare(a, b Task) int {
	if c := cmp.Compare(a.Priority.rank(), b.Priority.rank()); c != 0 {
		return c
	}

	ad, aok := a.DueDate()
	bd, bok := b.DueDate()
	if aok && bok {
		if c := ad.Compare(bd); c != 0 {
			return c
		}
	}

	return b.CreatedAt.Compare(a.CreatedAt)
}
