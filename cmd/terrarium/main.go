//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"terrarium/internal/app"
	"terrarium/internal/terrarium"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := cfg.Logger(os.Stderr, "terrarium")

	t, err := terrarium.New(cfg.Width, cfg.Height,
		terrarium.WithKind(cfg.Sim),
		terrarium.WithConfig(cfg.AutomatonConfig()),
		terrarium.WithSeed(cfg.Seed),
		terrarium.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal("create terrarium", "err", err)
	}

	game := app.New(t, cfg.Scale, cfg.Seed)
	size := t.Size()

	ebiten.SetWindowTitle("terrarium: " + t.Automaton().Name())
	ebiten.SetTPS(cfg.TPS)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	logger.Info("starting", "sim", cfg.Sim, "w", size.W, "h", size.H, "tps", cfg.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run", "err", err)
	}
}
