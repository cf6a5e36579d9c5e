// layers is a terminal sandbox of independent cellular automata drawn side
// by side.
//
// Usage:
//
//	layers                   - Run the command stream on stdin/stdout
//	layers tui               - Full-screen interactive view
//	layers rules             - List the layer rules
//	layers history           - Show recorded sessions
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible runs
//	--config <path>     - Load settings from a YAML file
//	--db <path>         - Set history database path (default: ~/.layers/history.db)
//	--no-history        - Do not record the session
//	--log-level <level> - Diagnostics level on stderr (debug, info, warn, error)
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-layers/internal/automata"
	"github.com/vovakirdan/tui-layers/internal/config"
	"github.com/vovakirdan/tui-layers/internal/core"
	"github.com/vovakirdan/tui-layers/internal/platform/stream"
	"github.com/vovakirdan/tui-layers/internal/storage"
)

var (
	// Global flags
	flagSeed      int64
	flagConfig    string
	flagDBPath    string
	flagNoHistory bool
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "layers",
	Short: "Layers - cellular automata side by side in your terminal",
	Long: `Layers runs seven small cellular automata, each with its own rule,
and prints them side by side after every command.

Commands read from standard input, one byte at a time:
  Enter    - Advance every layer one tick
  r/R      - Reset every layer
  q/Q      - Quit (end of input also quits)

Other commands:
  tui      - Full-screen view with colours and autoplay
  rules    - List the layer rules
  history  - Show recorded sessions

Examples:
  layers
  printf '\n\nq' | layers --seed 42
  layers tui --autoplay
  layers history --browse`,
	Args: cobra.NoArgs,
	Run:  runStream,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (default from config: ~/.layers/history.db)")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not record this session")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	// Add subcommands
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(historyCmd)
}

func runStream(cmd *cobra.Command, args []string) {
	cfg, logger := setup()

	seed := core.RuntimeConfig{Seed: flagSeed}.ResolveSeed()
	layers := newLayers(seed)

	stats, err := stream.Run(os.Stdin, os.Stdout, layers, stream.Options{
		Delimiter: cfg.DelimiterRune(),
		Seed:      seed,
		Logger:    logger,
	})
	recordSession(cfg, logger, stats)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger shared by all commands.
func setup() (config.Config, *log.Logger) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "layers",
	})
	logger.SetLevel(cfg.LogLevel())
	if flagLogLevel != "" {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid --log-level %q\n", flagLogLevel)
			os.Exit(1)
		}
		logger.SetLevel(level)
	}

	logger.Debug("config loaded", "source", source)
	return cfg, logger
}

// newLayers builds the reference layer table over a seeded source.
func newLayers(seed int64) *automata.LayerSet {
	src := rand.New(rand.NewSource(seed))
	layers, err := automata.NewLayerSet(automata.DefaultDimension, automata.Classic(automata.DefaultDimension), src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating layers: %v\n", err)
		os.Exit(1)
	}
	return layers
}

// dbPath returns the history database path, the flag taking precedence.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.DBPath
}

// recordSession appends stats to the history database.
// Failures are logged; the run itself already succeeded.
func recordSession(cfg config.Config, logger *log.Logger, stats core.RunStats) {
	if flagNoHistory || !cfg.Storage.Enabled {
		return
	}

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveSession(stats)
	if err != nil {
		logger.Warn("could not record session", "error", err)
		return
	}
	logger.Debug("session recorded", "id", id, "ticks", stats.Ticks, "resets", stats.Resets)
}
