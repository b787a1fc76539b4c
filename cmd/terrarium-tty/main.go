package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"terrarium/internal/app"
	"terrarium/internal/terrarium"
	"terrarium/internal/tty"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logFile := flag.String("log-file", "", "write logs to this file (the terminal is in use)")
	flag.Parse()

	if err := run(cfg, *logFile); err != nil {
		fmt.Fprintln(os.Stderr, "terrarium-tty:", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config, logFile string) error {
	var w io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	logger := cfg.Logger(w, "terrarium-tty")

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	// Two grid rows per terminal row, two lines reserved for status.
	width, height := cfg.Width, cfg.Height
	if sw, sh := screen.Size(); sw > 0 && sh > 2 {
		width = min(width, sw)
		height = min(height, 2*(sh-2))
	}

	t, err := terrarium.New(width, height,
		terrarium.WithKind(cfg.Sim),
		terrarium.WithConfig(cfg.AutomatonConfig()),
		terrarium.WithSeed(cfg.Seed),
		terrarium.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := tty.New(screen, t, tty.WithLogger(logger), tty.WithTPS(cfg.TPS), tty.WithSeed(cfg.Seed))
	if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
