package keymaps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildKeyMapDefaults(t *testing.T) {
	km := BuildKeyMap(nil)

	assert.Equal(t, []string{"a"}, km.AddTask.Keys())
	assert.Equal(t, []string{"ctrl+f", "/"}, km.SearchTasks.Keys())
	assert.Equal(t, "ctrl+f", km.SearchTasks.Help().Key)
	assert.Equal(t, "delete all tasks", km.ClearAll.Help().Desc)
	assert.Equal(t, []string{" "}, km.ToggleStatus.Keys())
	assert.Equal(t, "space", km.ToggleStatus.Help().Key)
	assert.Len(t, km.Bindings(), len(KeyDefinitions))
}

func TestBuildKeyMapOverrides(t *testing.T) {
	km := BuildKeyMap(map[string]string{"AddTask": "n, +", "DeleteTask": ""})

	assert.Equal(t, []string{"n", "+"}, km.AddTask.Keys())
	assert.Equal(t, []string{"d"}, km.DeleteTask.Keys())
}

func TestDefaultKeyMappingsCoverEveryAction(t *testing.T) {
	m := GetDefaultKeyMappings()
	for action, def := range KeyDefinitions {
		assert.Equal(t, def.DefaultKey, m[action])
	}
}
