package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/urfave/cli"

	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	app := cli.NewApp()
	app.Name = "go-life"
	app.Usage = "run Conway's Game of Life from a text seed"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Value: "config.json", Usage: "path to a JSON config file"},
		cli.StringFlag{Name: "seed-file, s", Usage: "path to a seed pattern ('.' dead, anything else alive)"},
		cli.IntFlag{Name: "generations, g", Usage: "stop after this many generations (0 runs forever)"},
		cli.DurationFlag{Name: "frame-rate, f", Usage: "delay between generations"},
	}
	app.Action = func(c *cli.Context) error {
		return run(c, logger)
	}

	if err := app.Run(os.Args); err != nil {
		level.Error(logger).Log("msg", "game failed", "err", err)
		os.Exit(1)
	}
}

func run(c *cli.Context, logger log.Logger) error {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(c.String("config"))
	if err != nil {
		level.Warn(logger).Log("msg", "using default configuration", "err", err)
		config = utils.DefaultConfig()
	}
	applyFlags(c, &config)
	if err = config.Validate(); err != nil {
		return err
	}

	grid, err := loadGrid(config)
	if err != nil {
		return err
	}
	level.Info(logger).Log("msg", "starting", "width", grid.Width(), "height", grid.Height(),
		"living", grid.CountLivingCells(), "max_generations", config.MaxGenerations)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	session := newGame(config, grid, os.Stdout)
	reason, err := session.Run(sigChan, time.Sleep)
	if err != nil {
		return err
	}

	level.Info(logger).Log("msg", "stopped", "reason", reason,
		"generations", session.stats.TotalGenerations,
		"runtime", session.stats.Runtime().Round(time.Millisecond),
		"avg_population", session.stats.AveragePopulation)
	return nil
}

// applyFlags overrides config values with any flags set on the command line
func applyFlags(c *cli.Context, config *utils.Config) {
	if c.IsSet("seed-file") {
		config.SeedFile = c.String("seed-file")
	}
	if c.IsSet("generations") {
		config.MaxGenerations = c.Int("generations")
	}
	if c.IsSet("frame-rate") {
		config.FrameRate = c.Duration("frame-rate")
	}
}
