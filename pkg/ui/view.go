package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"suite/pkg/todo"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	switch m.mode {
	case NormalMode:
		sb.WriteString(m.titleBar(" Suite - Todo List ", m.styles.AccentColor))
		sb.WriteString("\n\n")

		if len(m.items) == 0 {
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor)).Render("No tasks found"))
			sb.WriteString("\n")
		} else {
			sb.WriteString(m.table.View())
			sb.WriteString("\n")
		}

		var filterPart string
		switch m.taskFilter {
		case todo.AllTasksFilter:
			filterPart = " (no filter)"
		case todo.CompletedTasksFilter:
			filterPart = " (completed only)"
		case todo.PendingTasksFilter:
			filterPart = " (pending only)"
		}
		if m.searchTerm != "" {
			filterPart += fmt.Sprintf(" (search filter: %s)", m.searchTerm)
		}
		groupPart := ""
		if m.groupBy != GroupByNone {
			groupPart = fmt.Sprintf(" | grouped by %s", m.groupBy)
		}

		viewInfo := fmt.Sprintf("Showing %d tasks%s%s", len(m.items), filterPart, groupPart)
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor)).Render(viewInfo))
		sb.WriteString("\n")
		sb.WriteString(m.statusBar())

		if m.notice != "" {
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.styles.BadgeColor)).Render(m.notice))
		}

	case AddMode:
		sb.WriteString(m.titleBar(" Add New Task ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case EditMode:
		sb.WriteString(m.titleBar(" Edit Task ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case DeleteConfirmMode:
		sb.WriteString(m.titleBar(" Delete Task ", m.styles.ErrorColor))
		sb.WriteString("\n\n")

		if m.editingItem != nil {
			sb.WriteString("Are you sure you want to delete this task?\n\n")
			sb.WriteString(fmt.Sprintf("Task: %s\n", m.editingItem.Text))
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))
		}

	case ClearConfirmMode:
		sb.WriteString(m.titleBar(" Delete All Tasks ", m.styles.ErrorColor))
		sb.WriteString("\n\n")
		sb.WriteString(fmt.Sprintf("%s\n\n", todo.ClearAllPrompt))
		sb.WriteString(fmt.Sprintf("%d task(s) will be removed.\n\n", len(m.board.Tasks())))
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))

	case SearchMode:
		sb.WriteString(m.titleBar(" Search Tasks ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		sb.WriteString("Enter search term to find tasks:")
		sb.WriteString("\n\n")
		sb.WriteString(m.searchInput.View())
		sb.WriteString("\n\n")
		sb.WriteString(fmt.Sprintf("%d matching task(s)", len(m.items)))

	case HelpViewMode:
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Available Commands"))
		sb.WriteString("\n\n")

		keyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.AccentColor)).
			Bold(true)
		descStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor))

		addCommand := func(binding key.Binding) {
			sb.WriteString(fmt.Sprintf("%s: %s\n",
				descStyle.Render(binding.Help().Desc),
				keyStyle.Render(binding.Help().Key)))
		}
		for _, binding := range m.keyMap.Bindings() {
			addCommand(binding)
		}

	case BadgesViewMode:
		sb.WriteString(m.titleBar(" Achievements ", m.styles.BadgeColor))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderBadges())
	}

	// Error message if any
	if m.err != nil {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.ErrorColor)).Render(fmt.Sprintf("\n\nError: %v", m.err)))
	}

	// Add help status bar at the bottom
	sb.WriteString("\n")
	sb.WriteString(m.helpBar())

	return sb.String()
}

func (m Model) titleBar(title, bg string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(title)
}

// statusBar shows the streak, overall progress and earned badge icons
func (m Model) statusBar() string {
	st := m.board.Stats()
	streak := m.board.Streak().Count

	dayWord := "days"
	if streak == 1 {
		dayWord = "day"
	}
	parts := []string{
		fmt.Sprintf("🔥 %d %s", streak, dayWord),
		fmt.Sprintf("%d/%d done (%d%%)", st.Completed, st.Total, int(math.Round(st.Progress()))),
	}

	if badges := m.board.Badges(); len(badges) > 0 {
		var icons []string
		for _, b := range badges {
			icons = append(icons, b.Icon())
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.BadgeColor)).Render(strings.Join(icons, " ")))
	}

	separator := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.BorderColor)).Render(" | ")
	return strings.Join(parts, separator)
}

// renderBadges lists earned badges first, then the locked ones
func (m Model) renderBadges() string {
	var sb strings.Builder
	earned := m.board.Badges()

	earnedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.BadgeColor)).Bold(true)
	lockedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.BorderColor))

	for _, b := range earned {
		sb.WriteString(earnedStyle.Render(b.Display()))
		sb.WriteString("\n")
	}
	for _, b := range todo.AllBadges() {
		if !earned.Has(b) {
			sb.WriteString(lockedStyle.Render("🔒 " + string(b)))
			sb.WriteString("\n")
		}
	}

	if st := m.board.Stats(); len(st.Categories) > 0 {
		sb.WriteString("\nCategories: ")
		sb.WriteString(strings.Join(st.Categories, ", "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// helpBar renders a sleek status bar with available actions
func (m Model) helpBar() string {
	var actions []string

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))
	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.BorderColor))

	separator := separatorStyle.Render(" • ")

	addAction := func(k, desc string) {
		actions = append(actions, fmt.Sprintf("%s %s", keyStyle.Render(k), descStyle.Render(desc)))
	}
	addBinding := func(b key.Binding, desc string) {
		addAction(b.Help().Key, desc)
	}

	switch m.mode {
	case NormalMode:
		addBinding(m.keyMap.AddTask, "add")
		addBinding(m.keyMap.EditTask, "edit")
		addBinding(m.keyMap.DeleteTask, "del")
		addBinding(m.keyMap.ToggleStatus, "toggle")
		addBinding(m.keyMap.SearchTasks, "search")
		addBinding(m.keyMap.ShowBadges, "badges")
		addBinding(m.keyMap.ShowHelp, "help")
		addBinding(m.keyMap.QuitApp, "quit")

	case AddMode, EditMode:
		addAction("tab", "next field")
		addAction("enter", "save")
		addAction("esc", "cancel")

	case DeleteConfirmMode, ClearConfirmMode:
		addAction("y", "confirm")
		addAction("n", "cancel")

	case SearchMode:
		addAction("enter", "search")
		addAction("esc", "cancel")

	case HelpViewMode, BadgesViewMode:
		addAction("esc", "back")
		addBinding(m.keyMap.QuitApp, "quit")
	}

	return strings.Join(actions, separator)
}

// renderForm renders the input form for adding/editing tasks
func (m Model) renderForm() string {
	var sb strings.Builder

	sb.WriteString("Task:\n")
	sb.WriteString(m.textInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Priority:\n")
	sb.WriteString(m.priorityInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Due Date (YYYY-MM-DD):\n")
	sb.WriteString(m.dueDateInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Category:\n")
	sb.WriteString(m.categoryInput.View())

	return sb.String()
}
