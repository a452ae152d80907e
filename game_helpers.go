package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	stopInterrupted    = "interrupted"
	stopExtinction     = "extinction"
	stopStagnation     = "stagnation detected"
	stopMaxGenerations = "maximum generations reached"
)

// game drives a grid one generation per frame
type game struct {
	config   utils.Config
	grid     *model.Grid
	out      io.Writer
	renderer *model.TerminalRenderer
	history  *model.History
	stats    *utils.Stats
}

func newGame(config utils.Config, grid *model.Grid, out io.Writer) *game {
	return &game{
		config:   config,
		grid:     grid,
		out:      out,
		renderer: model.NewTerminalRenderer(out),
		history:  model.NewHistory(config.HistorySize),
		stats:    utils.NewStats(),
	}
}

// loadGrid parses the configured seed
func loadGrid(config utils.Config) (*model.Grid, error) {
	seed, err := config.SeedText()
	if err != nil {
		return nil, err
	}
	return model.ParseGrid(seed)
}

// Run renders and advances the grid until a stop condition is met or a signal arrives.
// It returns the reason the game stopped.
func (g *game) Run(sigChan <-chan os.Signal, sleep func(time.Duration)) (string, error) {
	var (
		generation    = 0
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	for {
		select {
		case <-sigChan:
			return stopInterrupted, nil
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		if g.config.ClearScreen {
			if err := g.renderer.Clear(); err != nil {
				return "", err
			}
		}

		livingCells := g.grid.CountLivingCells()
		g.stats.Update(generation, livingCells, time.Since(lastFrameTime))
		lastFrameTime = frameStart

		hash := g.grid.Hash()
		if g.history.IsStagnant(hash) {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		g.history.Push(hash)

		if err := g.renderer.Display(g.grid); err != nil {
			return "", err
		}
		if _, err := fmt.Fprintf(g.out, "Gen: %d | Living: %d | Avg Pop: %.1f\n",
			generation, livingCells, g.stats.AveragePopulation); err != nil {
			return "", errors.Wrap(err, "[Run] failed to write status")
		}

		if stop, reason := checkStopConditions(livingCells, stagnantCount, generation, g.config); stop {
			return reason, nil
		}

		g.grid.Tick()
		generation++

		// Wait before next frame
		sleep(g.config.FrameRate)
	}
}

// checkStopConditions determines if the game should stop
func checkStopConditions(livingCells, stagnantCount, generation int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, stopExtinction
	}
	if config.StopOnStagnation && stagnantCount >= config.StagnationThreshold {
		return true, stopStagnation
	}
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, stopMaxGenerations
	}
	return false, ""
}
