package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"suite/pkg/config"
	"suite/pkg/todo"
	"suite/pkg/utils"
)

// loadTasks rebuilds the table from the board using the current filters
func (m *Model) loadTasks() {
	m.items = m.board.View(todo.Query{Search: m.searchTerm, Filter: m.taskFilter})

	index := make(map[int64]int, len(m.items))
	for i, item := range m.items {
		index[item.ID] = i
	}

	var tableRows []table.Row
	m.rowTasks = make([]int, 0, len(m.items))
	groups := groupTasks(m.items, m.groupBy)

	for _, group := range groups {
		if m.groupBy != GroupByNone {
			groupHeader := fmt.Sprintf("== %s ==", group.GroupName)
			tableRows = append(tableRows, table.Row{
				lipgloss.NewStyle().
					Bold(true).
					Foreground(lipgloss.Color(m.styles.AccentColor)).
					Render(groupHeader),
			})
			m.rowTasks = append(m.rowTasks, -1)
		}

		for _, item := range group.Tasks {
			tableRows = append(tableRows, table.Row{renderTask(item, m.styles)})
			m.rowTasks = append(m.rowTasks, index[item.ID])
		}
	}

	m.table.SetRows(tableRows)
	if c := m.table.Cursor(); c >= len(tableRows) && len(tableRows) > 0 {
		m.table.SetCursor(len(tableRows) - 1)
	}
}

// selected returns the task under the cursor. Group headers select nothing.
func (m *Model) selected() (todo.Task, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.rowTasks) || m.rowTasks[c] < 0 {
		return todo.Task{}, false
	}
	return m.items[m.rowTasks[c]], true
}

// toggleSelected flips the task under the cursor and reports new badges
func (m *Model) toggleSelected() {
	task, ok := m.selected()
	if !ok {
		return
	}

	before := len(m.board.Badges())
	if _, ok := m.board.Toggle(task.ID); !ok {
		return
	}
	m.announceBadges(before)
	m.loadTasks()
}

// announceBadges sets the notice for badges earned since the board held
// before of them.
func (m *Model) announceBadges(before int) {
	badges := m.board.Badges()
	if len(badges) <= before {
		return
	}
	var names []string
	for _, b := range badges[before:] {
		names = append(names, b.Display())
	}
	m.notice = "Unlocked: " + strings.Join(names, ", ")
	utils.Log("Announced badges: %s", m.notice)
}

// focusInput focuses the active form field and blurs the rest
func (m *Model) focusInput() {
	inputs := m.formInputs()
	for i, in := range inputs {
		if i == m.activeInput {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m *Model) formInputs() []*textinput.Model {
	return []*textinput.Model{&m.textInput, &m.priorityInput, &m.dueDateInput, &m.categoryInput}
}

// focusNextInput cycles through the form inputs
func (m *Model) focusNextInput() {
	m.activeInput = (m.activeInput + 1) % fieldCount
	m.focusInput()
}

// focusPreviousInput cycles through the form inputs
func (m *Model) focusPreviousInput() {
	m.activeInput = (m.activeInput - 1 + fieldCount) % fieldCount
	m.focusInput()
}

// submitForm processes the form data based on the current mode
func (m *Model) submitForm() {
	text := strings.TrimSpace(m.textInput.Value())
	due := strings.TrimSpace(m.dueDateInput.Value())
	category := strings.TrimSpace(m.categoryInput.Value())

	priority, err := todo.ParsePriority(m.priorityInput.Value())
	if err != nil {
		m.err = err
		return
	}
	if due != "" {
		if _, err := time.Parse(todo.DateLayout, due); err != nil {
			m.err = fmt.Errorf("invalid date format: use YYYY-MM-DD")
			return
		}
	}
	if text == "" {
		m.err = fmt.Errorf("task text must not be empty")
		return
	}

	switch m.mode {
	case AddMode:
		before := len(m.board.Badges())
		if _, ok := m.board.Add(text, due, priority, category); !ok {
			m.err = fmt.Errorf("could not add task")
			return
		}
		m.announceBadges(before)

	case EditMode:
		if m.editingItem != nil {
			if _, ok := m.board.Edit(m.editingItem.ID, text, due, priority, category); !ok {
				m.err = fmt.Errorf("could not update task")
				return
			}
		}
	}

	// Reset state
	m.err = nil
	m.mode = NormalMode
	m.resetInputs()
	m.editingItem = nil
	m.loadTasks()
}

// renderTask formats one table row: status, priority, text, due date and
// category.
func renderTask(task todo.Task, styles config.Styles) string {
	status := "[ ]"
	text := task.Text
	if task.Completed {
		status = "[x]"
		text = lipgloss.NewStyle().
			Foreground(lipgloss.Color(styles.DoneTextColor)).
			Strikethrough(true).
			Render(text)
	}

	parts := []string{status, priorityStyle(task.Priority, styles).Render(priorityLabel(task.Priority)), text}
	if task.Due != "" {
		parts = append(parts, "📅 "+task.Due)
	}
	if task.Category != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color(styles.CategoryColor)).Render("#"+task.Category))
	}
	return strings.Join(parts, " ")
}

func priorityLabel(p todo.Priority) string {
	switch p {
	case todo.PriorityHigh:
		return "!!!"
	case todo.PriorityLow:
		return "!  "
	default:
		return "!! "
	}
}

func priorityStyle(p todo.Priority, styles config.Styles) lipgloss.Style {
	color := styles.MediumColor
	switch p {
	case todo.PriorityHigh:
		color = styles.HighColor
	case todo.PriorityLow:
		color = styles.LowColor
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
