package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It matches defaults/t2048.yaml.
func DefaultConfig() Config {
	return Config{
		TickRate: 30,
		Keys: KeysConfig{
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Up:      []string{"up", "w", "k"},
			Down:    []string{"down", "s", "j"},
			Confirm: []string{"enter", "r"},
			Cancel:  []string{"esc", "q"},
		},
		Theme: ThemeConfig{
			Tiles: map[int]string{
				2:    "white",
				4:    "bright_white",
				8:    "yellow",
				16:   "bright_yellow",
				32:   "red",
				64:   "bright_red",
				128:  "magenta",
				256:  "bright_magenta",
				512:  "blue",
				1024: "bright_cyan",
				2048: "bright_green",
			},
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/scores.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
