// Package stream runs the layers over a plain byte stream: a banner, one
// render of the initial state, then one render per accepted command.
// It is the non-interactive counterpart of the tui package and works with
// pipes as well as terminals.
package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-layers/internal/automata"
	"github.com/vovakirdan/tui-layers/internal/core"
)

// Options configures a stream run.
type Options struct {
	Delimiter rune        // Column drawn between layers
	Seed      int64       // Seed used for the layers, recorded in the stats
	Logger    *log.Logger // Optional diagnostics, never written to the output
}

// Run drives layers from in until a quit command or end of input, writing
// every render to out. The layers are reset before the first render.
func Run(in io.Reader, out io.Writer, layers *automata.LayerSet, opts Options) (core.RunStats, error) {
	stats := core.RunStats{
		Mode:      "stream",
		Seed:      opts.Seed,
		StartedAt: time.Now(),
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := bufio.NewWriter(out)
	finish := func(err error) (core.RunStats, error) {
		stats.Population = layers.Population()
		stats.Duration = time.Since(stats.StartedAt)
		if flushErr := w.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("stream: write failed: %w", flushErr)
		}
		return stats, err
	}

	if _, err := io.WriteString(w, Banner(layers)); err != nil {
		return finish(fmt.Errorf("stream: write failed: %w", err))
	}
	layers.Reset()
	if err := render(w, layers, opts.Delimiter); err != nil {
		return finish(err)
	}

	r := bufio.NewReader(in)
	for {
		b, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			logger.Debug("end of input", "ticks", stats.Ticks, "resets", stats.Resets)
			return finish(nil)
		}
		if err != nil {
			return finish(fmt.Errorf("stream: read failed: %w", err))
		}

		switch core.ParseControl(b) {
		case core.ActionQuit:
			logger.Debug("quit", "ticks", stats.Ticks, "resets", stats.Resets)
			return finish(nil)
		case core.ActionReset:
			layers.Reset()
			stats.Resets++
			logger.Debug("reset")
		case core.ActionTick:
			layers.Tick()
			stats.Ticks++
			logger.Debug("tick", "generation", layers.Generation())
		default:
			continue
		}

		if err := render(w, layers, opts.Delimiter); err != nil {
			return finish(err)
		}
	}
}

// render writes one frame and flushes it so an interactive user sees it
// before typing the next command.
func render(w *bufio.Writer, layers *automata.LayerSet, delim rune) error {
	if _, err := w.WriteString(layers.Render(delim)); err != nil {
		return fmt.Errorf("stream: write failed: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("stream: write failed: %w", err)
	}
	return nil
}

// Banner returns the startup instructions for a layer set.
func Banner(layers *automata.LayerSet) string {
	n := layers.Dimension()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Layers: %d independent %dx%d grids of binary cells, shown side by side.\n", layers.Len(), n, n)
	sb.WriteString("Each layer follows its own rule and draws active cells with its own character:\n")
	for k := 0; k < layers.Len(); k++ {
		g := layers.Layer(k)
		fmt.Fprintf(&sb, "  %c  %-12s %s\n", g.Glyph(), g.Rule(), g.Rule().Description())
	}
	sb.WriteString("\n")
	sb.WriteString("Each newline in the input evolves the layers by one tick.\n")
	sb.WriteString("The letter r/R resets the layers (re-randomizes their contents).\n")
	sb.WriteString("The letter q/Q or end of input quits.\n")
	return sb.String()
}
