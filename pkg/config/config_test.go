package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, styles, err := Load("")
	require.NoError(t, err)

	dir := filepath.Join(home, ".config", "suite")
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, filepath.Join(dir, "suite.db"), cfg.Database)
	assert.Equal(t, "space", cfg.KeyMap["ToggleStatus"])
	assert.Equal(t, DefaultStyles(), styles)

	assert.FileExists(t, filepath.Join(dir, "config.json"))
	assert.FileExists(t, filepath.Join(dir, "styles.json"))
}

func TestLoadReadsFileAndEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, "custom.json")
	stylesPath := filepath.Join(home, "styles.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"store": "File",
		"data_file": "/tmp/suite-data.json",
		"styles_file": "`+stylesPath+`",
		"keymap": {"AddTask": "n"}
	}`), 0o644))
	require.NoError(t, os.WriteFile(stylesPath, []byte(`{"accent_color": "99"}`), 0o644))

	cfg, styles, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StoreFile, cfg.Store)
	assert.Equal(t, "/tmp/suite-data.json", cfg.DataFile)
	assert.Equal(t, "n", cfg.KeyMap["AddTask"])
	assert.Equal(t, "d", cfg.KeyMap["DeleteTask"])
	assert.Equal(t, "99", styles.AccentColor)
	assert.Equal(t, DefaultStyles().HighColor, styles.HighColor)

	t.Setenv("SUITE_STORE", "memory")
	cfg, _, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.Store)
}

func TestLoadRejectsBrokenConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"store":`), 0o644))

	_, _, err := Load(path)
	assert.Error(t, err)
}

func TestLoadWithFlagsOverridesEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SUITE_STORE", "file")

	flags := pflag.NewFlagSet("suite", pflag.ContinueOnError)
	flags.String("store", "", "")
	flags.String("dsn", "", "")
	require.NoError(t, flags.Parse([]string{"--dsn", "postgres://localhost/suite"}))

	cfg, _, err := LoadWithFlags("", flags)
	require.NoError(t, err)
	assert.Equal(t, StoreFile, cfg.Store, "unset flags leave env values alone")
	assert.Equal(t, "postgres://localhost/suite", cfg.DSN)

	require.NoError(t, flags.Parse([]string{"--store", "Memory"}))
	cfg, _, err = LoadWithFlags("", flags)
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.Store)
}

func TestLoadReadsDotEnvBesideConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	// registered for cleanup, then removed so the .env value applies
	t.Setenv("SUITE_DSN", "")
	require.NoError(t, os.Unsetenv("SUITE_DSN"))
	t.Setenv("SUITE_STORE", "memory")

	dir := filepath.Join(home, ".config", "suite")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("SUITE_DSN=postgres://db/suite\nSUITE_STORE=postgres\n"), 0o644))

	cfg, _, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://db/suite", cfg.DSN)
	assert.Equal(t, StoreMemory, cfg.Store, "the real environment wins")
}
