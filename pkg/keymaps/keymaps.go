package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":        {"ctrl+b", "show/hide commands"},
	"QuitApp":         {"q", "quit"},
	"ToggleStatus":    {"space", "toggle status"},
	"AddTask":         {"a", "add task"},
	"EditTask":        {"e", "edit task"},
	"DeleteTask":      {"d", "delete task"},
	"ClearAll":        {"X", "delete all tasks"},
	"ShowAllTasks":    {"ctrl+a", "show all tasks"},
	"ShowDoneTasks":   {"ctrl+d", "show only completed tasks"},
	"ShowUndoneTasks": {"ctrl+u", "show only pending tasks"},
	"SearchTasks":     {"ctrl+f,/", "search tasks"},
	"ShowBadges":      {"b", "show achievements"},
	"ToggleGroupBy":   {"g", "group by category/due date"},
}

type KeyMap struct {
	ShowHelp        key.Binding
	QuitApp         key.Binding
	ToggleStatus    key.Binding
	AddTask         key.Binding
	EditTask        key.Binding
	DeleteTask      key.Binding
	ClearAll        key.Binding
	ShowAllTasks    key.Binding
	ShowDoneTasks   key.Binding
	ShowUndoneTasks key.Binding
	SearchTasks     key.Binding
	ShowBadges      key.Binding
	ToggleGroupBy   key.Binding
}

func BuildKeyMap(configOverrides map[string]string) KeyMap {
	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := configOverrides[action]; exists && override != "" {
			keyStr = override
		}

		binding := parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		switch action {
		case "ShowHelp":
			km.ShowHelp = binding
		case "QuitApp":
			km.QuitApp = binding
		case "ToggleStatus":
			km.ToggleStatus = binding
		case "AddTask":
			km.AddTask = binding
		case "EditTask":
			km.EditTask = binding
		case "DeleteTask":
			km.DeleteTask = binding
		case "ClearAll":
			km.ClearAll = binding
		case "ShowAllTasks":
			km.ShowAllTasks = binding
		case "ShowDoneTasks":
			km.ShowDoneTasks = binding
		case "ShowUndoneTasks":
			km.ShowUndoneTasks = binding
		case "SearchTasks":
			km.SearchTasks = binding
		case "ShowBadges":
			km.ShowBadges = binding
		case "ToggleGroupBy":
			km.ToggleGroupBy = binding
		}
	}
	return km
}

// Bindings lists the bindings in the order the help screen shows them.
func (km KeyMap) Bindings() []key.Binding {
	return []key.Binding{
		km.QuitApp,
		km.ShowHelp,
		km.ToggleStatus,
		km.AddTask,
		km.EditTask,
		km.DeleteTask,
		km.ClearAll,
		km.ShowAllTasks,
		km.ShowDoneTasks,
		km.ShowUndoneTasks,
		km.SearchTasks,
		km.ShowBadges,
		km.ToggleGroupBy,
	}
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	names := strings.Split(keyStr, ",")
	keys := make([]string, len(names))
	for i, k := range names {
		names[i] = strings.TrimSpace(k)
		keys[i] = names[i]
		// the space bar reports itself as " "
		if keys[i] == "space" {
			keys[i] = " "
		}
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(names[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
