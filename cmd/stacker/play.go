package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-stacker/internal/app"
	"github.com/vovakirdan/tui-stacker/internal/core"
	"github.com/vovakirdan/tui-stacker/internal/games/stacker"
	"github.com/vovakirdan/tui-stacker/internal/platform/tui"
)

// Rows and columns taken by the frame border, header and help line.
const (
	chromeCols = 2
	chromeRows = 4
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Enter - Drop the box, start, resume
  Esc/B       - Pause; from pause or game over, back to the menu
  Q/Ctrl+C    - Quit (same as holding Back on the device)
  ?           - More help

Difficulty options:
  easy   - Slow box
  normal - Default speed
  hard   - Fast box

Examples:
  stacker play
  stacker play --difficulty easy
  stacker play --log ./stacker.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs only go to a --log file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size to pick the cell scale
	width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	screen := core.FitScreen(cfg.Field.Width, cfg.Field.Height, width-chromeCols, height-chromeRows)
	sx, sy := screen.Scale()
	logger.Info("starting", "cols", screen.Width(), "rows", screen.Height(), "scale_x", sx, "scale_y", sy)

	engine := app.NewEngine(stacker.NewParams(cfg), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = tui.Run(ctx, engine, screen, tui.Options{
		TickRate:     cfg.Host.TickRate,
		InputBuffer:  cfg.Host.InputBuffer,
		ReleaseDelay: time.Duration(cfg.Host.ReleaseDelayMS) * time.Millisecond,
		Logger:       logger,
	})
	if err != nil {
		logger.Error("host stopped", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
