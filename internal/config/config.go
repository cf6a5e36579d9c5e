// Package config provides YAML-based settings loading for the layers shell.
// Only presentation and shell behaviour are configurable; grid size and rule
// parameters are fixed by the automata package.
package config

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-layers/internal/automata"
	"github.com/vovakirdan/tui-layers/internal/core"
)

// Config contains all settings of the layers shell.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Play    PlayConfig    `yaml:"play"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
}

// DisplayConfig defines how layers are drawn.
type DisplayConfig struct {
	Delimiter      string            `yaml:"delimiter"`       // Single character between layers
	DelimiterColor string            `yaml:"delimiter_color"` // TUI only
	Colors         map[string]string `yaml:"colors"`          // Rule name -> color name, TUI only
}

// PlayConfig defines the TUI autoplay behaviour.
type PlayConfig struct {
	Autoplay bool `yaml:"autoplay"`
	TickRate int  `yaml:"tick_rate"` // Ticks per second while autoplaying
}

// LogConfig defines diagnostics output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// StorageConfig defines the session history database.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// Validate checks that every field can be applied.
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.Display.Delimiter) != 1 {
		return fmt.Errorf("config: delimiter must be a single character, got %q", c.Display.Delimiter)
	}
	if r := c.DelimiterRune(); !unicode.IsPrint(r) {
		return fmt.Errorf("config: delimiter %q is not printable", r)
	}
	if c.Display.DelimiterColor != "" {
		if _, err := core.ParseColor(c.Display.DelimiterColor); err != nil {
			return fmt.Errorf("config: delimiter_color: %w", err)
		}
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	if c.Play.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Play.TickRate)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	if c.Storage.Enabled && c.Storage.DBPath == "" {
		return fmt.Errorf("config: storage enabled without db_path")
	}
	return nil
}

// DelimiterRune returns the delimiter as a rune.
func (c Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Display.Delimiter)
	return r
}

// Palette resolves the per-rule colors. Rules without an entry use ColorDefault.
func (c Config) Palette() (map[automata.RuleKind]core.Color, error) {
	palette := make(map[automata.RuleKind]core.Color, len(c.Display.Colors))
	for ruleName, colorName := range c.Display.Colors {
		rule, err := automata.ParseRule(ruleName)
		if err != nil {
			return nil, fmt.Errorf("config: colors: %w", err)
		}
		color, err := core.ParseColor(colorName)
		if err != nil {
			return nil, fmt.Errorf("config: colors.%s: %w", ruleName, err)
		}
		palette[rule] = color
	}
	return palette, nil
}

// DelimiterColorValue resolves the delimiter colour, ColorDefault when unset.
func (c Config) DelimiterColorValue() core.Color {
	color, err := core.ParseColor(c.Display.DelimiterColor)
	if err != nil {
		return core.ColorDefault
	}
	return color
}

// LogLevel returns the parsed log level, falling back to warn.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// Runtime builds the runtime configuration handed to the front ends.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:      seed,
		Delimiter: c.DelimiterRune(),
		TickRate:  c.Play.TickRate,
		Autoplay:  c.Play.Autoplay,
	}
}
