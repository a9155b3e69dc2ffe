package ui

import (
	"sort"

	"suite/pkg/todo"
)

// GroupBy selects how the task table is split into sections.
type GroupBy int

const (
	GroupByNone GroupBy = iota
	GroupByCategory
	GroupByDueDate
	groupByCount
)

func (g GroupBy) String() string {
	switch g {
	case GroupByCategory:
		return "category"
	case GroupByDueDate:
		return "due date"
	default:
		return "none"
	}
}

const (
	noCategoryGroup = "No Category"
	noDueGroup      = "No Due Date"
)

// GroupedTasks represents tasks grouped by a common attribute
type GroupedTasks struct {
	GroupName string
	Tasks     []todo.Task
}

// groupTasks splits tasks, which are already in display order, into named
// groups. Order inside a group is kept; groups are sorted by name with the
// catch-all group last.
func groupTasks(tasks []todo.Task, by GroupBy) []GroupedTasks {
	if by == GroupByNone {
		return []GroupedTasks{{GroupName: "", Tasks: tasks}}
	}

	groups := make(map[string][]todo.Task)
	fallback := noCategoryGroup
	if by == GroupByDueDate {
		fallback = noDueGroup
	}

	for _, task := range tasks {
		groupKey := task.Category
		if by == GroupByDueDate {
			groupKey = task.Due
		}
		if groupKey == "" {
			groupKey = fallback
		}
		groups[groupKey] = append(groups[groupKey], task)
	}

	// Convert map to sorted slice
	var groupNames []string
	for name := range groups {
		if name != fallback {
			groupNames = append(groupNames, name)
		}
	}
	sort.Strings(groupNames)
	if _, ok := groups[fallback]; ok {
		groupNames = append(groupNames, fallback)
	}

	result := make([]GroupedTasks, 0, len(groupNames))
	for _, name := range groupNames {
		result = append(result, GroupedTasks{GroupName: name, Tasks: groups[name]})
	}
	return result
}
