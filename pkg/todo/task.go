// Package todo holds the to-do core: the task repository, the streak
// tracker, the achievement engine and the read-only view pipeline.
package todo

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the day format used for due dates and the streak.
const DateLayout = "2006-01-02"

// Priority represents the priority levels of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// rank orders priorities for display: high first.
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// ParsePriority maps user input to a Priority. Empty input means medium.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PriorityMedium, nil
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	default:
		return "", fmt.Errorf("unknown priority %q (want high, medium or low)", s)
	}
}

// Task represents a single to-do item.
type Task struct {
	ID        int64     `json:"id" yaml:"id" validate:"required"`
	Text      string    `json:"text" yaml:"text" validate:"required"`
	Completed bool      `json:"completed" yaml:"completed"`
	Due       string    `json:"due" yaml:"due,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Priority  Priority  `json:"priority" yaml:"priority" validate:"required,oneof=high medium low"`
	Category  string    `json:"category" yaml:"category,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// HasDue reports whether the task carries a parseable due date.
func (t Task) HasDue() bool {
	_, ok := t.DueDate()
	return ok
}

// DueDate parses the due date.
func (t Task) DueDate() (time.Time, bool) {
	if t.Due == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(DateLayout, t.Due)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

var validate = validator.New()

// Validate checks the struct tags on t.
func (t Task) Validate() error {
	return validate.Struct(t)
}
