package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stacker/internal/app"
	"github.com/vovakirdan/tui-stacker/internal/core"
	"github.com/vovakirdan/tui-stacker/internal/games/stacker"
	"github.com/vovakirdan/tui-stacker/internal/platform/host"
)

var (
	flagDrops     int
	flagTimeout   time.Duration
	flagShowFrame bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch the autopilot play, headless",
	Long: `Run the game without a terminal UI. The autopilot taps OK when the
falling box is closest to the top of the tower and quits after --drops drops.
Logs go to stderr unless --log is given.

Examples:
  stacker demo
  stacker demo --drops 50 --difficulty hard --debug
  stacker demo --timeout 5s --frame`,
	Args: cobra.NoArgs,
	Run:  runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&flagDrops, "drops", 10, "Quit after this many drops (0 = until timeout)")
	demoCmd.Flags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "Stop after this long")
	demoCmd.Flags().BoolVar(&flagShowFrame, "frame", false, "Print the last frame when done")
}

func runDemo(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	engine := app.NewEngine(stacker.NewParams(cfg), logger)
	screen := core.NewScreen(cfg.Field.Width, cfg.Field.Height/2, 1, 2)
	loop := host.New(engine, screen, host.Options{
		TickRate:    cfg.Host.TickRate,
		InputBuffer: cfg.Host.InputBuffer,
		Logger:      logger,
	})
	pilot := host.NewAutopilot(flagDrops)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, flagTimeout)
	defer cancel()

	pilotDone := make(chan struct{})
	go func() {
		defer close(pilotDone)
		// Poll faster than the tick so no frame is missed.
		pilot.Run(ctx, engine, loop.Send, time.Second/time.Duration(2*cfg.Host.TickRate))
	}()

	err = loop.Run(ctx)
	cancel()
	<-pilotDone
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagShowFrame {
		fmt.Println(screen.String())
	}
	fmt.Printf("drops: %d  best score: %d  ticks: %d\n", pilot.Drops(), pilot.BestScore(), loop.Ticks())
	// The loop has stopped, so nothing holds the store.
	if snap, err := engine.Snapshot(); err == nil && snap.State != app.StateQuit {
		fmt.Printf("stopped in %s: score %d, tower %d\n", snap.State, snap.Score, len(snap.Tower))
	}
	if code := engine.ErrorCode(); code != app.CodeNone {
		fmt.Printf("last fault: code %d (%v)\n", code, engine.LastFault())
	}
}
