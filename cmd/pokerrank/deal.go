package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerrank/cmd/pokerrank/shared"
	"github.com/lox/pokerrank/internal/config"
	"github.com/lox/pokerrank/internal/fileutil"
	"github.com/lox/pokerrank/internal/randutil"
	"github.com/lox/pokerrank/internal/showdown"
)

// DealFlags override the matching settings from the configuration file
type DealFlags struct {
	Seed      *int64  `kong:"help='Deterministic RNG seed (optional)'"`
	Threshold *string `kong:"help='Only report hands strictly above this category'"`
	Limit     *int    `kong:"help='Stop after this many matches (0 = run forever)'"`
	Summary   *string `kong:"help='Write a JSON run summary to this file on exit'"`
}

// ShowdownCmd deals two hands per round
type ShowdownCmd struct {
	DealFlags `kong:"embed"`
}

func (c *ShowdownCmd) Run(g *Globals) error {
	return runDeal(g, config.ModePairs, c.DealFlags, os.Stdout)
}

// HighHandsCmd deals one hand per round
type HighHandsCmd struct {
	DealFlags `kong:"embed"`
}

func (c *HighHandsCmd) Run(g *Globals) error {
	return runDeal(g, config.ModeHigh, c.DealFlags, os.Stdout)
}

// resolveDeal merges the config file and flags into a runner config
func resolveDeal(g *Globals, mode string, flags DealFlags) (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}

	cfg.Showdown.Mode = mode
	if flags.Seed != nil {
		cfg.Showdown.Seed = *flags.Seed
	}
	if flags.Threshold != nil {
		cfg.Showdown.Threshold = *flags.Threshold
	}
	if flags.Limit != nil {
		cfg.Showdown.Limit = *flags.Limit
	}
	if flags.Summary != nil {
		cfg.Output.SummaryFile = *flags.Summary
	}
	if g.Debug {
		cfg.Output.LogLevel = "debug"
	}
	if g.JSONLogs {
		cfg.Output.LogFormat = "json"
	}
	if g.NoColor {
		color := false
		cfg.Output.Color = &color
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDeal(g *Globals, mode string, flags DealFlags, out io.Writer) error {
	cfg, err := resolveDeal(g, mode, flags)
	if err != nil {
		return err
	}

	logger, err := shared.SetupLogger(cfg.Output.LogLevel, false, cfg.Output.LogFormat == "json")
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	return deal(ctx, cfg, logger, quartz.NewReal(), out)
}

func deal(ctx context.Context, cfg *config.Config, logger *log.Logger, clock quartz.Clock, out io.Writer) error {
	threshold, err := cfg.Showdown.ThresholdCategory()
	if err != nil {
		return err
	}

	seed := randutil.Seed(cfg.Showdown.Seed)
	runner, err := showdown.NewRunner(showdown.Config{
		Mode:          showdown.Mode(cfg.Showdown.Mode),
		Threshold:     threshold,
		Seed:          seed,
		Limit:         cfg.Showdown.Limit,
		ProgressEvery: cfg.Showdown.Progress(),
		Logger:        logger,
		Clock:         clock,
		Reporter:      showdown.NewWriterReporter(out, cfg.Output.ColorEnabled()),
	})
	if err != nil {
		return err
	}

	runErr := runner.Run(ctx)
	summary := runner.Summary()
	logger.Info("Run finished",
		"rounds", summary.Rounds,
		"matches", summary.Matches,
		"elapsed", summary.Elapsed)

	if cfg.Output.SummaryFile != "" {
		if err := fileutil.WriteJSONAtomic(cfg.Output.SummaryFile, summary); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		logger.Info("Wrote summary", "file", cfg.Output.SummaryFile)
	}

	// interrupting the infinite loop is the normal way to stop
	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}
