// Package config provides the settings for a minesweeper process.
//
// Values are layered: built-in defaults, then a named preset, then a TOML
// file, then MINESWEEPER_* environment variables. Command-line flags are
// applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/minesweeper/internal/session"
)

// EnvPrefix is prepended to every environment variable the config reads.
const EnvPrefix = "MINESWEEPER_"

// ErrUnknownPreset is returned for a preset name that is not in Presets.
var ErrUnknownPreset = errors.New("unknown preset")

// Presets are the named board sizes.
var Presets = map[string]session.Params{
	"beginner":     {Rows: 9, Cols: 9, Mines: 10},
	"intermediate": {Rows: 16, Cols: 16, Mines: 40},
	"expert":       {Rows: 16, Cols: 30, Mines: 99},
}

// Config holds everything needed to start a game.
type Config struct {
	// Preset is the name of the last preset applied, empty for custom sizes.
	Preset string

	Rows  int
	Cols  int
	Mines int

	// Seed for mine placement. A seed of 0 means a random seed will be generated.
	Seed int64

	// TickInterval is how often the elapsed time is redrawn.
	TickInterval time.Duration

	// LogFile receives the log output. Empty disables logging.
	LogFile  string
	LogLevel string

	// Development turns on debug logging.
	Development bool
}

// Default returns an 8x8 board with 10 mines and a one second tick.
func Default() Config {
	return Config{
		Rows:         8,
		Cols:         8,
		Mines:        10,
		TickInterval: time.Second,
		LogFile:      "minesweeper.log",
		LogLevel:     "info",
	}
}

// Load builds a Config from the defaults, the TOML file at path (skipped when
// path is empty) and the environment, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset replaces the board size with the named preset.
func (c *Config) ApplyPreset(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	p, ok := Presets[name]
	if !ok {
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	c.Preset = name
	c.Rows = p.Rows
	c.Cols = p.Cols
	c.Mines = p.Mines
	return nil
}

type fileConfig struct {
	Preset       string `toml:"preset"`
	Rows         int    `toml:"rows"`
	Cols         int    `toml:"cols"`
	Mines        int    `toml:"mines"`
	Seed         int64  `toml:"seed"`
	TickInterval string `toml:"tick_interval"`
	LogFile      string `toml:"log_file"`
	LogLevel     string `toml:"log_level"`
	Development  bool   `toml:"development"`
}

// LoadFile overlays the keys defined in the TOML file at path. A preset in
// the file is applied before explicit rows, cols and mines.
func (c *Config) LoadFile(path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	if meta.IsDefined("preset") {
		if err := c.ApplyPreset(raw.Preset); err != nil {
			return fmt.Errorf("parse preset: %w", err)
		}
	}
	if meta.IsDefined("rows") {
		c.Rows = raw.Rows
		c.Preset = ""
	}
	if meta.IsDefined("cols") {
		c.Cols = raw.Cols
		c.Preset = ""
	}
	if meta.IsDefined("mines") {
		c.Mines = raw.Mines
		c.Preset = ""
	}
	if meta.IsDefined("seed") {
		c.Seed = raw.Seed
	}
	if meta.IsDefined("tick_interval") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.TickInterval))
		if err != nil {
			return fmt.Errorf("parse tick_interval: %w", err)
		}
		c.TickInterval = d
	}
	if meta.IsDefined("log_file") {
		c.LogFile = strings.TrimSpace(raw.LogFile)
	}
	if meta.IsDefined("log_level") {
		c.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("development") {
		c.Development = raw.Development
	}
	return nil
}

// ApplyEnv overlays MINESWEEPER_* environment variables. Unset and empty
// variables are ignored.
func (c *Config) ApplyEnv() error {
	if v, ok := lookupEnv("PRESET"); ok {
		if err := c.ApplyPreset(v); err != nil {
			return fmt.Errorf("%sPRESET: %w", EnvPrefix, err)
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"ROWS", &c.Rows},
		{"COLS", &c.Cols},
		{"MINES", &c.Mines},
	}
	for _, e := range ints {
		v, ok := lookupEnv(e.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, e.key, err)
		}
		*e.dst = n
		c.Preset = ""
	}

	if v, ok := lookupEnv("SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Seed = n
	}
	if v, ok := lookupEnv("TICK_INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sTICK_INTERVAL: %w", EnvPrefix, err)
		}
		c.TickInterval = d
	}
	if v, ok := lookupEnv("LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookupEnv("DEVELOPMENT"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sDEVELOPMENT: %w", EnvPrefix, err)
		}
		c.Development = b
	}
	return nil
}

// Validate checks the board parameters, the tick interval and the log level.
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("invalid board: %w", err)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("invalid tick_interval %s: must be positive", c.TickInterval)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the log level, forced to debug in development mode.
func (c Config) Level() (logrus.Level, error) {
	if c.Development {
		return logrus.DebugLevel, nil
	}
	if c.LogLevel == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid log_level: %w", err)
	}
	return lvl, nil
}

// Params returns the board parameters for a session.
func (c Config) Params() session.Params {
	return session.Params{Rows: c.Rows, Cols: c.Cols, Mines: c.Mines}
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
