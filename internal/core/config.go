package core

import "time"

// RuntimeConfig contains the settings a front end needs to drive the layers.
type RuntimeConfig struct {
	Seed      int64 // RNG seed, 0 means use current time
	Delimiter rune  // Column drawn between layers
	TickRate  int   // Autoplay ticks per second (TUI only)
	Autoplay  bool  // Start the TUI with autoplay running
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed:      0,
		Delimiter: '|',
		TickRate:  4,
		Autoplay:  false,
	}
}

// ResolveSeed returns the configured seed, or a time-based one if unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed == 0 {
		return time.Now().UnixNano()
	}
	return c.Seed
}

// RunStats summarises one run of a front end, for the session history.
type RunStats struct {
	Mode       string    // "stream" or "tui"
	Seed       int64     // Seed actually used
	Ticks      int       // Tick commands applied
	Resets     int       // Reset commands applied (the initial reset is not counted)
	Population []int     // Live cells per layer when the run ended
	StartedAt  time.Time // When the run started
	Duration   time.Duration
}

// LiveCells returns the total number of live cells across all layers.
func (s RunStats) LiveCells() int {
	total := 0
	for _, n := range s.Population {
		total += n
	}
	return total
}
