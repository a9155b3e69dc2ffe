package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"suite/pkg/config"
	"suite/pkg/keymaps"
	"suite/pkg/todo"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	AddMode
	EditMode
	DeleteConfirmMode
	ClearConfirmMode // Mode for confirming deletion of every task
	SearchMode       // Mode for searching tasks
	HelpViewMode     // Mode for displaying help
	BadgesViewMode   // Mode for listing achievements
)

// Form fields in tab order
const (
	textField = iota
	priorityField
	dueField
	categoryField
	fieldCount
)

// Model represents the application state
type Model struct {
	table         table.Model
	items         []todo.Task
	rowTasks      []int // table row -> index into items, -1 for group headers
	board         *todo.Board
	width, height int
	err           error
	notice        string

	// Configuration
	config config.Config
	styles config.Styles
	keyMap keymaps.KeyMap

	// View state
	taskFilter todo.TaskFilter
	searchTerm string
	groupBy    GroupBy

	// Form state
	mode          InputMode
	textInput     textinput.Model
	priorityInput textinput.Model
	dueDateInput  textinput.Model
	categoryInput textinput.Model
	searchInput   textinput.Model
	activeInput   int

	// Edit/delete state
	editingItem *todo.Task
}

// NewModel creates a new UI model for board with the provided configuration
func NewModel(board *todo.Board, cfg config.Config, styles config.Styles) Model {
	// Create an empty column - the title will be empty to avoid showing a header
	columns := []table.Column{
		{Title: "", Width: 72},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.HiddenBorder()).
		BorderBottom(false).
		Bold(false).
		Foreground(lipgloss.NoColor{})

	s.Selected = s.Selected.
		Foreground(lipgloss.Color(styles.SelectedTextColor)).
		Background(lipgloss.Color(styles.SelectedBgColor)).
		Bold(true)
	t.SetStyles(s)

	textInput := textinput.New()
	textInput.Placeholder = "What needs to be done?"
	textInput.Focus()
	textInput.Width = 40

	priorityInput := textinput.New()
	priorityInput.Placeholder = "high, medium or low"
	priorityInput.Width = 40

	dueDateInput := textinput.New()
	dueDateInput.Placeholder = "Due Date (YYYY-MM-DD, optional)"
	dueDateInput.Width = 40

	categoryInput := textinput.New()
	categoryInput.Placeholder = "Category (optional)"
	categoryInput.Width = 40

	searchInput := textinput.New()
	searchInput.Placeholder = "Search tasks"
	searchInput.Focus()
	searchInput.Width = 40

	m := Model{
		table:         t,
		board:         board,
		config:        cfg,
		styles:        styles,
		keyMap:        keymaps.BuildKeyMap(cfg.KeyMap),
		mode:          NormalMode,
		textInput:     textInput,
		priorityInput: priorityInput,
		dueDateInput:  dueDateInput,
		categoryInput: categoryInput,
		searchInput:   searchInput,
		taskFilter:    todo.AllTasksFilter,
	}
	m.resetInputs()

	// Load initial data
	m.loadTasks()

	return m
}

// Init initializes the model (required by Bubble Tea Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the interactive board and blocks until the user quits.
func Run(board *todo.Board, cfg config.Config, styles config.Styles) error {
	p := tea.NewProgram(NewModel(board, cfg, styles), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// resetInputs clears all form inputs
func (m *Model) resetInputs() {
	m.textInput.Reset()
	m.priorityInput.SetValue(string(todo.PriorityMedium))
	m.dueDateInput.Reset()
	m.categoryInput.Reset()

	m.activeInput = textField
	m.focusInput()
}
