package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"suite/pkg/todo"
	"suite/pkg/utils"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case NormalMode:
			m.notice = ""
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = HelpViewMode

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.ToggleStatus):
				m.toggleSelected()

			case key.Matches(msg, m.keyMap.AddTask):
				m.mode = AddMode
				m.err = nil
				m.resetInputs()
				return m, nil

			case key.Matches(msg, m.keyMap.EditTask):
				if task, ok := m.selected(); ok {
					m.mode = EditMode
					m.err = nil
					m.editingItem = &task
					m.resetInputs()

					// Populate form with existing values
					m.textInput.SetValue(task.Text)
					m.priorityInput.SetValue(string(task.Priority))
					m.dueDateInput.SetValue(task.Due)
					m.categoryInput.SetValue(task.Category)
					return m, nil
				}

			case key.Matches(msg, m.keyMap.DeleteTask):
				if task, ok := m.selected(); ok {
					m.mode = DeleteConfirmMode
					m.editingItem = &task
				}

			case key.Matches(msg, m.keyMap.ClearAll):
				if len(m.board.Tasks()) > 0 {
					m.mode = ClearConfirmMode
				}

			case key.Matches(msg, m.keyMap.ShowAllTasks):
				m.taskFilter = todo.AllTasksFilter
				m.loadTasks()

			case key.Matches(msg, m.keyMap.ShowDoneTasks):
				// Toggle between done tasks and all tasks
				if m.taskFilter == todo.CompletedTasksFilter {
					m.taskFilter = todo.AllTasksFilter
				} else {
					m.taskFilter = todo.CompletedTasksFilter
				}
				m.loadTasks()

			case key.Matches(msg, m.keyMap.ShowUndoneTasks):
				// Toggle between undone tasks and all tasks
				if m.taskFilter == todo.PendingTasksFilter {
					m.taskFilter = todo.AllTasksFilter
				} else {
					m.taskFilter = todo.PendingTasksFilter
				}
				m.loadTasks()

			case key.Matches(msg, m.keyMap.SearchTasks):
				m.mode = SearchMode
				m.searchInput.Focus()
				m.searchInput.SetValue(m.searchTerm)
				return m, nil

			case key.Matches(msg, m.keyMap.ShowBadges):
				m.mode = BadgesViewMode

			case key.Matches(msg, m.keyMap.ToggleGroupBy):
				m.groupBy = (m.groupBy + 1) % groupByCount
				m.loadTasks()

			case msg.String() == "esc" && m.searchTerm != "":
				m.searchTerm = ""
				m.loadTasks()

			default:
				// Unbound keys navigate the table; bound ones must not also
				// move the cursor (space pages down in the table key map)
				m.table, cmd = m.table.Update(msg)
				cmds = append(cmds, cmd)
			}

		case AddMode, EditMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.err = nil
				m.resetInputs()
				m.editingItem = nil
				return m, nil

			case "tab":
				m.focusNextInput()
				return m, nil

			case "shift+tab":
				m.focusPreviousInput()
				return m, nil

			case "enter":
				if m.activeInput == categoryField {
					m.submitForm()
				} else {
					m.focusNextInput()
				}
				return m, nil
			}

			// Handle input updates
			active := m.formInputs()[m.activeInput]
			*active, cmd = active.Update(msg)
			cmds = append(cmds, cmd)

		case SearchMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.searchTerm = ""
				m.loadTasks()
				return m, nil

			case "enter":
				m.searchTerm = m.searchInput.Value()
				utils.Log("Searching for: %s", m.searchTerm)
				m.mode = NormalMode
				m.loadTasks()
				return m, nil
			}

			// Search as you type
			m.searchInput, cmd = m.searchInput.Update(msg)
			cmds = append(cmds, cmd)
			m.searchTerm = m.searchInput.Value()
			m.loadTasks()

		case DeleteConfirmMode:
			switch msg.String() {
			case "y", "Y":
				if m.editingItem != nil {
					utils.Log("Deleting task ID: %d", m.editingItem.ID)
					m.board.Remove(m.editingItem.ID)
					m.loadTasks()
				}
				m.mode = NormalMode
				m.editingItem = nil

			case "n", "N", "esc":
				m.mode = NormalMode
				m.editingItem = nil
			}

		case ClearConfirmMode:
			switch msg.String() {
			case "y", "Y", "n", "N", "esc":
				answer := msg.String() == "y" || msg.String() == "Y"
				if m.board.ClearAll(todo.ConfirmFunc(func(string) bool { return answer })) {
					m.notice = "All tasks deleted"
				} else {
					m.notice = "Operation cancelled."
				}
				m.mode = NormalMode
				m.loadTasks()
			}

		case HelpViewMode, BadgesViewMode:
			switch {
			case msg.String() == "esc",
				m.mode == HelpViewMode && key.Matches(msg, m.keyMap.ShowHelp),
				m.mode == BadgesViewMode && key.Matches(msg, m.keyMap.ShowBadges):
				m.mode = NormalMode

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 4)
		m.table.SetHeight(msg.Height - 8)
	}

	// Keys were routed above; other messages reach the table in normal mode
	if _, isKey := msg.(tea.KeyMsg); !isKey && m.mode == NormalMode {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
