package commands

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"suite/pkg/todo"
)

var (
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	headerStyle   = lipgloss.NewStyle().Bold(true)
	badgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	lockedStyle   = lipgloss.NewStyle().Faint(true)

	priorityStyles = map[todo.Priority]lipgloss.Style{
		todo.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		todo.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		todo.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
)

// HandleListCommand prints the filtered, sorted task list
func HandleListCommand(board *todo.Board, out io.Writer, search, filter string) error {
	f, err := todo.ParseFilter(filter)
	if err != nil {
		return err
	}

	tasks := board.View(todo.Query{Search: search, Filter: f})
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks found")
		return nil
	}

	for _, task := range tasks {
		fmt.Fprintln(out, formatTask(task))
	}
	return nil
}

// HandleStatsCommand prints progress, streak and categories
func HandleStatsCommand(board *todo.Board, out io.Writer) error {
	st := board.Stats()

	fmt.Fprintln(out, headerStyle.Render("Progress"))
	fmt.Fprintf(out, "You've completed %d of %d tasks (%d%%)\n", st.Completed, st.Total, int(math.Round(st.Progress())))
	fmt.Fprintf(out, "Streak: %s\n", formatStreak(board.Streak().Count))
	if len(st.Categories) > 0 {
		fmt.Fprintf(out, "Categories: %s\n", strings.Join(st.Categories, ", "))
	}
	return nil
}

// HandleBadgesCommand prints earned and locked badges
func HandleBadgesCommand(board *todo.Board, out io.Writer) error {
	earned := board.Badges()

	fmt.Fprintln(out, headerStyle.Render("Achievements"))
	for _, b := range earned {
		fmt.Fprintln(out, badgeStyle.Render(b.Display()))
	}
	for _, b := range todo.AllBadges() {
		if !earned.Has(b) {
			fmt.Fprintln(out, lockedStyle.Render("🔒 "+string(b)))
		}
	}
	return nil
}

func formatTask(task todo.Task) string {
	status := "[ ]"
	text := task.Text
	if task.Completed {
		status = "[x]"
		text = doneStyle.Render(text)
	}

	parts := []string{
		status,
		fmt.Sprintf("%d", task.ID),
		priorityStyles[task.Priority].Render(fmt.Sprintf("(%s)", task.Priority)),
		text,
	}
	if task.Due != "" {
		parts = append(parts, "due "+task.Due)
	}
	if task.Category != "" {
		parts = append(parts, categoryStyle.Render("#"+task.Category))
	}
	return strings.Join(parts, " ")
}

func formatStreak(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(todo.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: use YYYY-MM-DD", s)
	}
	return d, nil
}
