// stacker is a tower-stacking arcade game for the terminal.
//
// Usage:
//
//	stacker play             - Play in the terminal
//	stacker demo             - Let the autopilot play headless
//	stacker config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Override the tick rate (default: from config, 80)
//	--config <path>        - Use a custom config YAML
//	--difficulty <preset>  - easy, normal or hard
//	--log <path>           - Write logs to a file
//	--debug                - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stacker/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stacker",
	Short: "Stacker - stack boxes in your terminal",
	Long: `Stacker is a one-button arcade game. A box slides back and forth above
a tower; drop it so it lands on the top box. Whatever hangs over the edge
is cut off, and a drop that misses entirely ends the game.

Available commands:
  play     - Play in the terminal
  demo     - Watch the autopilot play, headless
  config   - Print the effective configuration

Examples:
  stacker play
  stacker play --difficulty hard
  stacker demo --drops 20
  stacker config --config ./my-stacker.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from the global flags.
func loadConfig() (config.StackerConfig, error) {
	cfg, err := config.LoadStacker(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagFPS > 0 {
		cfg.Host.TickRate = flagFPS
	}
	return cfg, cfg.Validate()
}

// newLogger builds the process logger. A --log file takes precedence over
// fallback; the returned func closes it.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		//nolint:errcheck // Best-effort close on exit
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "stacker",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
