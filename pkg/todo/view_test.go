package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Text
	}
	return out
}

func TestViewSortScenario(t *testing.T) {
	b, _, _ := newBoard("2024-01-01")
	b.Add("A", "", PriorityHigh, "")
	b.Add("B", "2024-01-01", PriorityLow, "")
	b.Add("C", "2024-01-02", PriorityHigh, "")

	assert.Equal(t, []string{"C", "A", "B"}, texts(b.View(Query{})))
}

func TestCompare(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	older := Task{Text: "older", Priority: PriorityMedium, CreatedAt: base}
	newer := Task{Text: "newer", Priority: PriorityMedium, CreatedAt: base.Add(time.Hour)}
	early := Task{Text: "early", Priority: PriorityMedium, Due: "2024-03-01", CreatedAt: base.Add(2 * time.Hour)}
	late := Task{Text: "late", Priority: PriorityMedium, Due: "2024-04-01", CreatedAt: base.Add(3 * time.Hour)}
	sameDue := Task{Text: "same", Priority: PriorityMedium, Due: "2024-03-01", CreatedAt: base.Add(4 * time.Hour)}
	high := Task{Text: "high", Priority: PriorityHigh, CreatedAt: base}

	assert.Negative(t, Compare(high, newer), "priority first")
	assert.Negative(t, Compare(early, late), "both due: due ascending")
	assert.Negative(t, Compare(newer, older), "no due: newest first")
	assert.Negative(t, Compare(late, older), "mixed due: newest first")
	assert.Negative(t, Compare(sameDue, early), "equal due: newest first")
	assert.Zero(t, Compare(early, early))
}

func TestViewFilterAndSearch(t *testing.T) {
	b, _, _ := newBoard("2024-01-01")
	milk, _ := b.Add("Buy MILK", "", PriorityMedium, "")
	b.Add("Buy bread", "", PriorityMedium, "")
	b.Add("Call plumber", "", PriorityMedium, "")
	b.Toggle(milk.ID)

	assert.Len(t, b.View(Query{}), 3)
	assert.Equal(t, []string{"Buy bread", "Buy MILK"}, texts(b.View(Query{Search: "buy"})))
	assert.Equal(t, []string{"Buy MILK"}, texts(b.View(Query{Search: "milk"})))
	assert.Equal(t, []string{"Buy MILK"}, texts(b.View(Query{Filter: CompletedTasksFilter})))
	assert.Equal(t, []string{"Call plumber", "Buy bread"}, texts(b.View(Query{Filter: PendingTasksFilter})))
	assert.Empty(t, b.View(Query{Search: "milk", Filter: PendingTasksFilter}))
}

func TestViewIsIdempotentAndReadOnly(t *testing.T) {
	b, _, _ := newBoard("2024-01-01")
	b.Add("one", "2024-02-01", PriorityLow, "")
	b.Add("two", "", PriorityHigh, "")
	b.Add("three", "2024-01-15", PriorityHigh, "")
	b.Add("four", "", PriorityLow, "")

	before := b.Tasks()
	q := Query{Filter: AllTasksFilter}
	first := b.View(q)
	second := b.View(q)

	assert.Equal(t, first, second)
	assert.Equal(t, before, b.Tasks(), "view must not reorder the repository")
}

func TestParseFilter(t *testing.T) {
	for in, want := range map[string]TaskFilter{
		"":          AllTasksFilter,
		"All":       AllTasksFilter,
		"completed": CompletedTasksFilter,
		"done":      CompletedTasksFilter,
		"pending":   PendingTasksFilter,
		"undone":    PendingTasksFilter,
	} {
		got, err := ParseFilter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFilter("later")
	assert.Error(t, err)
	assert.Equal(t, "pending", PendingTasksFilter.String())
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority(" HIGH ")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	p, err = ParsePriority("")
	require.NoError(t, err)
	assert.Equal(t, PriorityMedium, p)

	_, err = ParsePriority("urgent")
	assert.Error(t, err)
}
