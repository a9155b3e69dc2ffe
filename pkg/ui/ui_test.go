package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suite/pkg/config"
	"suite/pkg/keymaps"
	"suite/pkg/storage"
	"suite/pkg/todo"
)

func newTestModel(t *testing.T, texts ...string) Model {
	t.Helper()
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	board := todo.Load(storage.NewMemoryStore(), todo.WithClock(func() time.Time {
		now = now.Add(time.Second)
		return now
	}))
	for _, text := range texts {
		_, ok := board.Add(text, "", todo.PriorityMedium, "")
		require.True(t, ok)
	}

	cfg := config.Defaults(t.TempDir())
	cfg.KeyMap["ToggleStatus"] = "t"
	return NewModel(board, cfg, config.DefaultStyles())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestClearAllConfirmation(t *testing.T) {
	m := newTestModel(t, "first", "second")

	m = press(m, runes("X"))
	assert.Equal(t, ClearConfirmMode, m.mode)
	assert.Contains(t, m.View(), "2 task(s) will be removed.")

	m = press(m, runes("n"))
	assert.Equal(t, NormalMode, m.mode)
	assert.Equal(t, "Operation cancelled.", m.notice)
	assert.Len(t, m.board.Tasks(), 2)

	m = press(m, runes("X"), runes("y"))
	assert.Equal(t, NormalMode, m.mode)
	assert.Empty(t, m.board.Tasks())
	assert.Empty(t, m.items)
	assert.Contains(t, m.View(), "No tasks found")

	m = press(m, runes("X"))
	assert.Equal(t, NormalMode, m.mode, "nothing to clear")
}

func TestClearAllIgnoresOtherKeys(t *testing.T) {
	m := newTestModel(t, "first")

	m = press(m, runes("X"), runes("q"))
	assert.Equal(t, ClearConfirmMode, m.mode)

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, NormalMode, m.mode)
	assert.Len(t, m.board.Tasks(), 1)
}

func TestAddTaskThroughForm(t *testing.T) {
	m := newTestModel(t)
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m = press(m, runes("a"))
	require.Equal(t, AddMode, m.mode)
	assert.Empty(t, m.textInput.Value(), "the key that opened the form is not typed")

	m = press(m, runes("Buy milk"), enter, enter, runes("2024-05-03"), enter, runes("home"), enter)
	require.NoError(t, m.err)
	assert.Equal(t, NormalMode, m.mode)

	tasks := m.board.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Text)
	assert.Equal(t, todo.PriorityMedium, tasks[0].Priority)
	assert.Equal(t, "2024-05-03", tasks[0].Due)
	assert.Equal(t, "home", tasks[0].Category)
	assert.Contains(t, m.View(), "Buy milk")
}

func TestAddRejectsBadDate(t *testing.T) {
	m := newTestModel(t)
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m = press(m, runes("a"), runes("Pay rent"), enter, enter, runes("soon"), enter, enter)
	assert.Equal(t, AddMode, m.mode)
	assert.Error(t, m.err)
	assert.Empty(t, m.board.Tasks())

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, NormalMode, m.mode)
	assert.NoError(t, m.err)
}

func TestEditAndDeleteSelected(t *testing.T) {
	m := newTestModel(t, "draft")
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m = press(m, runes("e"))
	require.Equal(t, EditMode, m.mode)
	assert.Equal(t, "draft", m.textInput.Value())

	m = press(m, runes("!"), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, enter)
	require.Equal(t, NormalMode, m.mode)
	assert.Equal(t, "draft!", m.board.Tasks()[0].Text)

	m = press(m, runes("d"), runes("y"))
	assert.Empty(t, m.board.Tasks())
}

func TestToggleShowsStreakAndFilters(t *testing.T) {
	m := newTestModel(t, "one", "two")

	m = press(m, runes("t"))
	assert.Contains(t, m.View(), "🔥 1 day")
	assert.Contains(t, m.View(), "1/2 done (50%)")

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.Len(t, m.items, 1)
	assert.True(t, m.items[0].Completed)

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Len(t, m.items, 1)
	assert.False(t, m.items[0].Completed)

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlA})
	assert.Len(t, m.items, 2)
}

func TestSearchAsYouType(t *testing.T) {
	m := newTestModel(t, "Buy milk", "Call mom")

	m = press(m, runes("/"))
	require.Equal(t, SearchMode, m.mode)
	m = press(m, runes("MILK"))
	require.Len(t, m.items, 1)
	assert.Equal(t, "Buy milk", m.items[0].Text)

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, NormalMode, m.mode)
	assert.Contains(t, m.View(), "(search filter: MILK)")

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Len(t, m.items, 2)
}

func TestGroupingAddsHeaders(t *testing.T) {
	m := newTestModel(t)
	m.board.Add("rent", "", todo.PriorityHigh, "home")
	m.board.Add("report", "", todo.PriorityMedium, "work")
	m.board.Add("stretch", "", todo.PriorityLow, "")
	m.loadTasks()

	m = press(m, runes("g"))
	assert.Equal(t, GroupByCategory, m.groupBy)
	assert.Equal(t, []int{-1, 0, -1, 1, -1, 2}, m.rowTasks)
	assert.True(t, strings.Contains(m.table.Rows()[4][0], noCategoryGroup))

	m.table.SetCursor(0)
	_, ok := m.selected()
	assert.False(t, ok, "group headers select nothing")

	m = press(m, runes("g"), runes("g"))
	assert.Equal(t, GroupByNone, m.groupBy)
	assert.Equal(t, []int{0, 1, 2}, m.rowTasks)
}

func TestBadgesAndHelpViews(t *testing.T) {
	m := newTestModel(t, "one")

	m = press(m, runes("b"))
	require.Equal(t, BadgesViewMode, m.mode)
	assert.Contains(t, m.View(), "🔒 Getting Started")

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyCtrlB})
	require.Equal(t, HelpViewMode, m.mode)
	assert.Contains(t, m.View(), "delete all tasks")

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.Equal(t, NormalMode, m.mode)
}

func TestGroupTasksOrdersCatchAllLast(t *testing.T) {
	tasks := []todo.Task{
		{Text: "a", Due: "2024-05-03"},
		{Text: "b"},
		{Text: "c", Due: "2024-05-01"},
		{Text: "d", Due: "2024-05-03"},
	}

	groups := groupTasks(tasks, GroupByDueDate)
	require.Len(t, groups, 3)
	assert.Equal(t, "2024-05-01", groups[0].GroupName)
	assert.Equal(t, "2024-05-03", groups[1].GroupName)
	assert.Equal(t, []string{"a", "d"}, []string{groups[1].Tasks[0].Text, groups[1].Tasks[1].Text})
	assert.Equal(t, noDueGroup, groups[2].GroupName)
}

func TestDefaultSpaceTogglesSameTask(t *testing.T) {
	m := newTestModel(t, "one", "two")
	m.keyMap = keymaps.BuildKeyMap(nil)
	space := runes(" ")

	first, ok := m.selected()
	require.True(t, ok)

	m = press(m, space)
	assert.Equal(t, 0, m.table.Cursor(), "toggling does not page the table")
	got, _ := m.board.Get(first.ID)
	assert.True(t, got.Completed)

	m = press(m, space)
	got, _ = m.board.Get(first.ID)
	assert.False(t, got.Completed)
	for _, task := range m.board.Tasks() {
		assert.False(t, task.Completed, task.Text)
	}
}

func TestFilterKeysKeepCursor(t *testing.T) {
	m := newTestModel(t, "one", "two", "three")

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.table.Cursor())

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Equal(t, todo.PendingTasksFilter, m.taskFilter)
	assert.Equal(t, 1, m.table.Cursor(), "ctrl+u filters without scrolling")

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Equal(t, todo.AllTasksFilter, m.taskFilter)
	assert.Equal(t, 1, m.table.Cursor())
}
