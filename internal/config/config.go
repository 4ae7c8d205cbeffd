// Package config loads and persists the TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	// ConfigFileName is the file name inside the config directory.
	ConfigFileName = "config.toml"
	// DefaultDBName is the SQLite file created on first run.
	DefaultDBName = "pomoban.db"
	// DefaultLogName is the slog output file.
	DefaultLogName = "pomoban.log"
)

// Config is the full application configuration.
type Config struct {
	Timer   TimerConfig   `toml:"timer"`
	Board   BoardConfig   `toml:"board"`
	Topmost TopmostConfig `toml:"topmost"`
	Data    DataConfig    `toml:"data"`
	Keys    Keymap        `toml:"keys"`
}

// TimerConfig contains pomodoro phase lengths.
type TimerConfig struct {
	WorkMinutes  int `toml:"work_minutes"`
	BreakMinutes int `toml:"break_minutes"`
}

// WorkSeconds returns the work phase budget in seconds.
func (t TimerConfig) WorkSeconds() int {
	return t.WorkMinutes * 60
}

// BreakSeconds returns the break phase budget in seconds.
func (t TimerConfig) BreakSeconds() int {
	return t.BreakMinutes * 60
}

// BoardConfig contains board view defaults.
type BoardConfig struct {
	DefaultFilter string `toml:"default_filter"`
	DefaultSort   string `toml:"default_sort"`
	SortOrder     string `toml:"sort_order"`
}

// TopmostConfig contains always-on-top settings.
type TopmostConfig struct {
	Enabled bool `toml:"enabled"`
	// RaiseInterval is how often the watchdog reasserts, in seconds.
	RaiseInterval int `toml:"raise_interval"`
}

// Interval returns the watchdog period as a duration.
func (t TopmostConfig) Interval() time.Duration {
	return time.Duration(t.RaiseInterval) * time.Second
}

// DataConfig contains file locations.
type DataConfig struct {
	DBPath  string `toml:"db_path"`
	LogPath string `toml:"log_path"`
}

// Keymap holds the remappable action keys.
type Keymap struct {
	Quit      string `toml:"quit"`
	Help      string `toml:"help"`
	View      string `toml:"view"`
	Create    string `toml:"create"`
	Edit      string `toml:"edit"`
	Notes     string `toml:"notes"`
	Delete    string `toml:"delete"`
	Detail    string `toml:"detail"`
	Start     string `toml:"start"`
	Pause     string `toml:"pause"`
	Reset     string `toml:"reset"`
	Done      string `toml:"done"`
	Search    string `toml:"search"`
	Filter    string `toml:"filter"`
	Sort      string `toml:"sort"`
	Goto      string `toml:"goto"`
	MoveLeft  string `toml:"move_left"`
	MoveRight string `toml:"move_right"`
	Topmost   string `toml:"topmost"`
	Depend    string `toml:"depend"`
}

// DefaultDir returns the per-user configuration directory.
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "pomoban")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), ConfigFileName)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	dir := DefaultDir()

	return &Config{
		Timer: TimerConfig{
			WorkMinutes:  25,
			BreakMinutes: 5,
		},
		Board: BoardConfig{
			DefaultFilter: "all",
			DefaultSort:   "updated",
			SortOrder:     "desc",
		},
		Topmost: TopmostConfig{
			Enabled:       false,
			RaiseInterval: 2,
		},
		Data: DataConfig{
			DBPath:  filepath.Join(dir, DefaultDBName),
			LogPath: filepath.Join(dir, DefaultLogName),
		},
		Keys: Keymap{
			Quit:      "q",
			Help:      "?",
			View:      "v",
			Create:    "c",
			Edit:      "e",
			Notes:     "n",
			Delete:    "x",
			Detail:    "enter",
			Start:     "s",
			Pause:     " ",
			Reset:     "S",
			Done:      "d",
			Search:    "/",
			Filter:    "f",
			Sort:      "o",
			Goto:      "g",
			MoveLeft:  "H",
			MoveRight: "L",
			Topmost:   "t",
			Depend:    "D",
		},
	}
}

// LoadOrCreate reads the config at path, writing defaults first if the file
// does not exist. Missing fields are backfilled from defaults either way.
func LoadOrCreate(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Save(cfg, path); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	loaded := &Config{}
	if err := toml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return MergeWithDefaults(loaded), nil
}

// Save writes the configuration to path, creating parent directories.
func Save(cfg *Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults.
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// Merge timer config
	if cfg.Timer.WorkMinutes <= 0 {
		cfg.Timer.WorkMinutes = defaults.Timer.WorkMinutes
	}
	if cfg.Timer.BreakMinutes <= 0 {
		cfg.Timer.BreakMinutes = defaults.Timer.BreakMinutes
	}

	// Merge board config
	if cfg.Board.DefaultFilter == "" {
		cfg.Board.DefaultFilter = defaults.Board.DefaultFilter
	}
	if cfg.Board.DefaultSort == "" {
		cfg.Board.DefaultSort = defaults.Board.DefaultSort
	}
	if cfg.Board.SortOrder == "" {
		cfg.Board.SortOrder = defaults.Board.SortOrder
	}

	// Merge topmost config (Enabled keeps its zero value: off unless set)
	if cfg.Topmost.RaiseInterval <= 0 {
		cfg.Topmost.RaiseInterval = defaults.Topmost.RaiseInterval
	}

	// Merge data config
	if cfg.Data.DBPath == "" {
		cfg.Data.DBPath = defaults.Data.DBPath
	}
	if cfg.Data.LogPath == "" {
		cfg.Data.LogPath = defaults.Data.LogPath
	}

	// Merge keymap
	mergeKeys(&cfg.Keys, &defaults.Keys)

	return cfg
}

func mergeKeys(keys, defaults *Keymap) {
	if keys.Quit == "" {
		keys.Quit = defaults.Quit
	}
	if keys.Help == "" {
		keys.Help = defaults.Help
	}
	if keys.View == "" {
		keys.View = defaults.View
	}
	if keys.Create == "" {
		keys.Create = defaults.Create
	}
	if keys.Edit == "" {
		keys.Edit = defaults.Edit
	}
	if keys.Notes == "" {
		keys.Notes = defaults.Notes
	}
	if keys.Delete == "" {
		keys.Delete = defaults.Delete
	}
	if keys.Detail == "" {
		keys.Detail = defaults.Detail
	}
	if keys.Start == "" {
		keys.Start = defaults.Start
	}
	if keys.Pause == "" {
		keys.Pause = defaults.Pause
	}
	if keys.Reset == "" {
		keys.Reset = defaults.Reset
	}
	if keys.Done == "" {
		keys.Done = defaults.Done
	}
	if keys.Search == "" {
		keys.Search = defaults.Search
	}
	if keys.Filter == "" {
		keys.Filter = defaults.Filter
	}
	if keys.Sort == "" {
		keys.Sort = defaults.Sort
	}
	if keys.Goto == "" {
		keys.Goto = defaults.Goto
	}
	if keys.MoveLeft == "" {
		keys.MoveLeft = defaults.MoveLeft
	}
	if keys.MoveRight == "" {
		keys.MoveRight = defaults.MoveRight
	}
	if keys.Topmost == "" {
		keys.Topmost = defaults.Topmost
	}
	if keys.Depend == "" {
		keys.Depend = defaults.Depend
	}
}
