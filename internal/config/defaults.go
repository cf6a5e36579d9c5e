package config

import (
	_ "embed"
)

//go:embed defaults/layers.yaml
var defaultLayersYAML []byte

// Default returns the hardcoded configuration, used when the embedded YAML
// cannot be parsed.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Delimiter:      "|",
			DelimiterColor: "gray",
			Colors: map[string]string{
				"static":      "gray",
				"shift-left":  "cyan",
				"shift-right": "magenta",
				"sierpinski":  "yellow",
				"life":        "bright-green",
				"flood":       "blue",
				"random":      "red",
			},
		},
		Play: PlayConfig{
			Autoplay: false,
			TickRate: 4,
		},
		Log: LogConfig{
			Level: "warn",
		},
		Storage: StorageConfig{
			Enabled: true,
			DBPath:  "~/.layers/history.db",
		},
	}
}
