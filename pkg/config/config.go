package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"suite/pkg/keymaps"
)

// Store backends accepted by the "store" setting.
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreFile     = "file"
	StoreMemory   = "memory"
)

// Config holds the application configuration
type Config struct {
	Store      string            `json:"store" mapstructure:"store"`
	Database   string            `json:"database" mapstructure:"database"`
	DSN        string            `json:"dsn" mapstructure:"dsn"`
	DataFile   string            `json:"data_file" mapstructure:"data_file"`
	KeyMap     map[string]string `json:"keymap" mapstructure:"keymap"`
	StylesFile string            `json:"styles_file" mapstructure:"styles_file"`
}

// Styles holds the application colors and styling information
type Styles struct {
	// UI element colors
	BorderColor string `json:"border_color"`
	AccentColor string `json:"accent_color"`

	// Text colors
	NormalTextColor   string `json:"normal_text_color"`
	SelectedTextColor string `json:"selected_text_color"`
	SelectedBgColor   string `json:"selected_bg_color"`
	ErrorColor        string `json:"error_color"`
	DoneTextColor     string `json:"done_text_color"`

	// Priority, category and badge colors
	HighColor     string `json:"high_color"`
	MediumColor   string `json:"medium_color"`
	LowColor      string `json:"low_color"`
	CategoryColor string `json:"category_color"`
	BadgeColor    string `json:"badge_color"`
}

// DefaultDir is where the config, styles and default database live.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "suite"), nil
}

// Defaults returns the configuration used when no file overrides it.
func Defaults(configDir string) Config {
	return Config{
		Store:      StoreSQLite,
		Database:   filepath.Join(configDir, "suite.db"),
		DataFile:   filepath.Join(configDir, "data.json"),
		KeyMap:     keymaps.GetDefaultKeyMappings(),
		StylesFile: filepath.Join(configDir, "styles.json"),
	}
}

// DefaultStyles returns the built-in colour scheme.
func DefaultStyles() Styles {
	return Styles{
		BorderColor:       "240",
		AccentColor:       "205",
		NormalTextColor:   "86",
		SelectedTextColor: "229",
		SelectedBgColor:   "57",
		ErrorColor:        "9",
		DoneTextColor:     "244",
		HighColor:         "196",
		MediumColor:       "220",
		LowColor:          "42",
		CategoryColor:     "4",
		BadgeColor:        "214",
	}
}

// Load loads the application configuration from the specified path. An
// empty path means ~/.config/suite/config.json; a missing file is created
// with the defaults. SUITE_* environment variables override file values.
func Load(configPath string) (Config, Styles, error) {
	return LoadWithFlags(configPath, nil)
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"store":     "store",
	"dsn":       "dsn",
	"database":  "database",
	"data-file": "data_file",
}

// LoadWithFlags is Load with the flags in flagKeys taking precedence over
// the environment and the file when they were set on the command line.
func LoadWithFlags(configPath string, flags *pflag.FlagSet) (Config, Styles, error) {
	configDir, err := DefaultDir()
	if err != nil {
		return Config{}, Styles{}, err
	}
	if configPath == "" {
		configPath = filepath.Join(configDir, "config.json")
	}

	defaults := Defaults(configDir)

	// A .env beside the config file fills SUITE_* variables the real
	// environment leaves unset
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return defaults, Styles{}, fmt.Errorf("error reading %s: %w", envPath, err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("json")
	v.SetEnvPrefix("suite")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("store", defaults.Store)
	v.SetDefault("database", defaults.Database)
	v.SetDefault("dsn", defaults.DSN)
	v.SetDefault("data_file", defaults.DataFile)
	v.SetDefault("keymap", defaults.KeyMap)
	v.SetDefault("styles_file", defaults.StylesFile)

	if err := v.ReadInConfig(); err != nil {
		if !isNotExist(err) {
			return defaults, Styles{}, fmt.Errorf("error reading config: %w", err)
		}
		// Config file not found, create default config
		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return defaults, Styles{}, err
		}
		if err := v.WriteConfigAs(configPath); err != nil {
			return defaults, Styles{}, err
		}
	}

	// Bound after the default file is written so flags never end up in it
	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return defaults, Styles{}, err
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return defaults, Styles{}, fmt.Errorf("error decoding config: %w", err)
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))

	// Viper lower-cases map keys, so match actions case-insensitively and
	// fill in any key bindings the file does not mention
	merged := keymaps.GetDefaultKeyMappings()
	for action := range merged {
		for name, keys := range cfg.KeyMap {
			if strings.EqualFold(name, action) && keys != "" {
				merged[action] = keys
			}
		}
	}
	cfg.KeyMap = merged

	// Now load the styles file
	styles, err := loadStyles(cfg.StylesFile)
	if err != nil {
		return cfg, styles, fmt.Errorf("error loading styles: %w", err)
	}

	return cfg, styles, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// loadStyles loads the application styles from the specified path
func loadStyles(stylesPath string) (Styles, error) {
	defaultStyles := DefaultStyles()

	// Try to read the styles file
	stylesData, err := os.ReadFile(stylesPath)
	if err != nil {
		// If the file doesn't exist, create it with default values
		if os.IsNotExist(err) {
			// Create the directory if it doesn't exist
			stylesDir := filepath.Dir(stylesPath)
			if err := os.MkdirAll(stylesDir, 0755); err != nil {
				return defaultStyles, err
			}

			// Marshal the default styles to JSON
			stylesData, err = json.MarshalIndent(defaultStyles, "", "  ")
			if err != nil {
				return defaultStyles, err
			}

			// Write the default styles file
			if err := os.WriteFile(stylesPath, stylesData, 0644); err != nil {
				return defaultStyles, err
			}

			return defaultStyles, nil
		}
		// Some other error occurred
		return defaultStyles, err
	}

	// File exists, parse it over the defaults so new colours keep a value
	loadedStyles := defaultStyles
	if err := json.Unmarshal(stylesData, &loadedStyles); err != nil {
		return defaultStyles, err
	}

	return loadedStyles, nil
}
