package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-layers/internal/core"
	"github.com/vovakirdan/tui-layers/internal/platform/tui"
)

var (
	flagAutoplay bool
	flagRate     int
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Full-screen interactive view",
	Long: `Show the layers full screen, coloured per rule.

Controls:
  Enter      - Tick
  R          - Reset
  Space      - Toggle autoplay
  ?          - More help
  Q/Ctrl+C   - Quit

Examples:
  layers tui
  layers tui --autoplay --rate 10
  layers tui --seed 42`,
	Args: cobra.NoArgs,
	Run:  runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&flagAutoplay, "autoplay", false, "Start with autoplay running")
	tuiCmd.Flags().IntVar(&flagRate, "rate", 0, "Autoplay ticks per second (default from config)")
}

func runTUI(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: tui needs a terminal; pipe commands to 'layers' instead")
		os.Exit(1)
	}

	cfg, logger := setup()

	seed := core.RuntimeConfig{Seed: flagSeed}.ResolveSeed()
	runtime := cfg.Runtime(seed)
	if flagAutoplay {
		runtime.Autoplay = true
	}
	if flagRate != 0 {
		if flagRate < 0 {
			fmt.Fprintf(os.Stderr, "Error: --rate must be positive, got %d\n", flagRate)
			os.Exit(1)
		}
		runtime.TickRate = flagRate
	}

	layers := newLayers(seed)

	// The composite has to fit; a smaller window only gets a warning view.
	width, _ := tui.CompositeSize(layers)
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w < width {
		fmt.Fprintf(os.Stderr, "Error: terminal is %d columns wide, need at least %d\n", w, width)
		os.Exit(1)
	}

	palette, err := cfg.Palette()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	stats, err := tui.Run(layers, runtime, tui.Options{
		Theme: tui.Theme{
			Rules:     palette,
			Delimiter: cfg.DelimiterColorValue(),
		},
		Logger: logger,
	})
	recordSession(cfg, logger, stats)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("session ended", "ticks", stats.Ticks, "resets", stats.Resets, "seed", seed)
}
