// Package config provides YAML-based configuration loading for the 2048
// front-end: tick rate, key bindings, tile colors, storage and logging.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Config contains all front-end configuration.
// None of it changes the rules of the game.
type Config struct {
	TickRate int           `yaml:"tick_rate"`
	Keys     KeysConfig    `yaml:"keys"`
	Theme    ThemeConfig   `yaml:"theme"`
	Storage  StorageConfig `yaml:"storage"`
	Log      LogConfig     `yaml:"log"`
}

// KeysConfig lists the key names bound to each command.
type KeysConfig struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Confirm []string `yaml:"confirm"`
	Cancel  []string `yaml:"cancel"`
}

// Bindings returns the key lists paired with the action they trigger,
// in a fixed order.
func (k KeysConfig) Bindings() []Binding {
	return []Binding{
		{Action: core.ActionMoveLeft, Keys: k.Left},
		{Action: core.ActionMoveRight, Keys: k.Right},
		{Action: core.ActionMoveUp, Keys: k.Up},
		{Action: core.ActionMoveDown, Keys: k.Down},
		{Action: core.ActionConfirm, Keys: k.Confirm},
		{Action: core.ActionCancel, Keys: k.Cancel},
	}
}

// Binding is one command and its keys.
type Binding struct {
	Action core.Action
	Keys   []string
}

// ThemeConfig maps tile values to color names (see core.ParseColor).
type ThemeConfig struct {
	Tiles map[int]string `yaml:"tiles"`
}

// StorageConfig locates the score history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig controls the log file. An empty File disables logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate checks the configuration and reports every problem found.
func (c Config) Validate() error {
	var errs []error

	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}

	owner := make(map[string]core.Action)
	for _, b := range c.Keys.Bindings() {
		if len(b.Keys) == 0 {
			errs = append(errs, fmt.Errorf("keys: no key bound to %s", b.Action))
			continue
		}
		for _, k := range b.Keys {
			if k == "" {
				errs = append(errs, fmt.Errorf("keys: empty key name for %s", b.Action))
				continue
			}
			if k == "ctrl+c" {
				errs = append(errs, errors.New("keys: ctrl+c is reserved for quit"))
				continue
			}
			if prev, ok := owner[k]; ok && prev != b.Action {
				errs = append(errs, fmt.Errorf("keys: %q bound to both %s and %s", k, prev, b.Action))
				continue
			}
			owner[k] = b.Action
		}
	}

	values := make([]int, 0, len(c.Theme.Tiles))
	for v := range c.Theme.Tiles {
		values = append(values, v)
	}
	slices.Sort(values)
	for _, v := range values {
		if v < 2 || v&(v-1) != 0 {
			errs = append(errs, fmt.Errorf("theme: tile %d is not a power of two", v))
		}
		if _, ok := core.ParseColor(c.Theme.Tiles[v]); !ok {
			errs = append(errs, fmt.Errorf("theme: unknown color %q for tile %d", c.Theme.Tiles[v], v))
		}
	}

	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("log: %w", err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// TileColors resolves the theme into colors. Unknown names are skipped;
// Validate reports them.
func (c Config) TileColors() map[int]core.Color {
	colors := make(map[int]core.Color, len(c.Theme.Tiles))
	for v, name := range c.Theme.Tiles {
		if col, ok := core.ParseColor(name); ok {
			colors[v] = col
		}
	}
	return colors
}

// LogLevel returns the configured log level, defaulting to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
