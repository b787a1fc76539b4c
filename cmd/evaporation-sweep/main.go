package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"terrarium/internal/app"
	"terrarium/internal/material"
	"terrarium/internal/sims/granular"
)

type paramSet struct {
	temperature int
	delay       int
}

func (p paramSet) String() string {
	return fmt.Sprintf("temperature=%d delay=%d", p.temperature, p.delay)
}

type scenarioResult struct {
	params     paramSet
	steamFinal int
	steamPeak  int
	peakStep   int
	evaporated int
	condensed  int
	waterFinal int
}

// steamFraction is the share of the water budget held as steam at the end.
func (r scenarioResult) steamFraction() float64 {
	total := r.steamFinal + r.waterFinal
	if total == 0 {
		return 0
	}
	return float64(r.steamFinal) / float64(total)
}

func main() {
	steps := flag.Int("steps", 600, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 96, "grid width")
	height := flag.Int("h", 64, "grid height")
	depth := flag.Int("depth", 8, "rows of water poured at the bottom")
	seed := flag.Int64("seed", 1337, "seed shared by every scenario")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	cfg := app.NewConfig()
	cfg.LogLevel = *logLevel
	logger := cfg.Logger(os.Stderr, "sweep")

	base := granular.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.Seed = *seed

	temperatures := []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	delays := []int{0, 100, 250, 500, 1000}

	var sets []paramSet
	for _, temp := range temperatures {
		for _, delay := range delays {
			sets = append(sets, paramSet{temperature: temp, delay: delay})
		}
	}

	logger.Info("sweeping", "sets", len(sets), "workers", *workers, "steps", *steps)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				res, err := runScenario(base, params, *depth, *steps)
				if err != nil {
					logger.Error("scenario failed", "params", params, "err", err)
					continue
				}
				logger.Debug("scenario done", "params", params, "steam", res.steamFinal)
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].params.temperature != all[j].params.temperature {
			return all[i].params.temperature < all[j].params.temperature
		}
		return all[i].params.delay < all[j].params.delay
	})

	fmt.Printf("%-34s %8s %8s %10s %10s %10s\n", "params", "steam%", "peak", "peakStep", "evap", "cond")
	for _, res := range all {
		fmt.Printf("%-34s %7.1f%% %8d %10d %10d %10d\n",
			res.params, 100*res.steamFraction(), res.steamPeak, res.peakStep, res.evaporated, res.condensed)
	}
	logger.Info("sweep finished", "elapsed", time.Since(start).Round(time.Millisecond))
}

func runScenario(base granular.Config, params paramSet, depth, steps int) (scenarioResult, error) {
	cfg := base
	cfg.Temperature = params.temperature
	cfg.WaterCycleDelay = params.delay

	world, err := granular.NewWithConfig(cfg)
	if err != nil {
		return scenarioResult{}, err
	}
	world.Reset(cfg.Seed)

	size := world.Size()
	for row := max(size.H-depth, 0); row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			if err := world.Set(row, col, material.Water); err != nil {
				return scenarioResult{}, err
			}
		}
	}

	res := scenarioResult{params: params}
	for step := 0; step < steps; step++ {
		world.Tick()
		stats := world.Stats()
		res.evaporated += stats.Evaporated
		res.condensed += stats.Condensed

		steam := count(world.Cells(), material.Steam)
		if steam > res.steamPeak {
			res.steamPeak = steam
			res.peakStep = step + 1
		}
	}
	res.steamFinal = count(world.Cells(), material.Steam)
	res.waterFinal = count(world.Cells(), material.Water)
	return res, nil
}

func count(cells []material.State, s material.State) int {
	total := 0
	for _, c := range cells {
		if c == s {
			total++
		}
	}
	return total
}
