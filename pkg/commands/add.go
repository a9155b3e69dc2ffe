package commands

import (
	"fmt"
	"io"
	"strconv"

	"suite/pkg/todo"
)

// HandleAddTask processes the add command
func HandleAddTask(board *todo.Board, out io.Writer, text, due, priority, category string) error {
	p, err := todo.ParsePriority(priority)
	if err != nil {
		return err
	}
	if due != "" {
		if _, err := parseDate(due); err != nil {
			return err
		}
	}

	task, ok := board.Add(text, due, p, category)
	if !ok {
		return fmt.Errorf("task text must not be empty")
	}

	fmt.Fprintf(out, "Added task %d: %s\n", task.ID, task.Text)
	return nil
}

// HandleToggleTask flips a task between done and pending
func HandleToggleTask(board *todo.Board, out io.Writer, idStr string) error {
	id, err := parseID(idStr)
	if err != nil {
		return err
	}

	task, ok := board.Toggle(id)
	if !ok {
		fmt.Fprintf(out, "No task with id %d\n", id)
		return nil
	}

	state := "pending"
	if task.Completed {
		state = "done"
	}
	fmt.Fprintf(out, "Marked %q as %s (streak: %s)\n", task.Text, state, formatStreak(board.Streak().Count))
	return nil
}

// EditFields carries the values of an edit; nil fields keep the current value.
type EditFields struct {
	Text     *string
	Due      *string
	Priority *string
	Category *string
}

// HandleEditTask processes the edit command
func HandleEditTask(board *todo.Board, out io.Writer, idStr string, fields EditFields) error {
	id, err := parseID(idStr)
	if err != nil {
		return err
	}

	current, ok := board.Get(id)
	if !ok {
		fmt.Fprintf(out, "No task with id %d\n", id)
		return nil
	}

	text, due, category := current.Text, current.Due, current.Category
	priority := current.Priority
	if fields.Text != nil {
		text = *fields.Text
	}
	if fields.Due != nil {
		due = *fields.Due
		if due != "" {
			if _, err := parseDate(due); err != nil {
				return err
			}
		}
	}
	if fields.Priority != nil {
		if priority, err = todo.ParsePriority(*fields.Priority); err != nil {
			return err
		}
	}
	if fields.Category != nil {
		category = *fields.Category
	}

	task, ok := board.Edit(id, text, due, priority, category)
	if !ok {
		return fmt.Errorf("task text must not be empty")
	}
	fmt.Fprintf(out, "Updated task %d: %s\n", task.ID, task.Text)
	return nil
}

// HandleDeleteTask processes the delete command
func HandleDeleteTask(board *todo.Board, out io.Writer, idStr string) error {
	id, err := parseID(idStr)
	if err != nil {
		return err
	}

	if !board.Remove(id) {
		fmt.Fprintf(out, "No task with id %d\n", id)
		return nil
	}
	fmt.Fprintf(out, "Deleted task %d\n", id)
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return id, nil
}
