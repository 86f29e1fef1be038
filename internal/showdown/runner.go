// Package showdown deals random hands forever and reports the ones that
// clear a category threshold.
package showdown

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerrank/internal/deck"
	"github.com/lox/pokerrank/internal/evaluator"
	"github.com/lox/pokerrank/internal/randutil"
	"github.com/lox/pokerrank/internal/statistics"
)

// Mode selects what each round deals
type Mode string

const (
	// ModePairs deals two hands and reports when both clear the threshold
	ModePairs Mode = "pairs"
	// ModeHigh draws one hand and reports when it clears the threshold
	ModeHigh Mode = "high"
)

// Config holds configuration for a dealing run
type Config struct {
	Mode          Mode
	Threshold     evaluator.Category // hands must rank strictly above this
	Seed          int64
	Limit         int // stop after this many matches; 0 runs until cancelled
	ProgressEvery int // rounds between progress logs; 0 disables
	Logger        *log.Logger
	Clock         quartz.Clock
	Reporter      Reporter
}

// Match is a reported round. Hands and Ranks are ordered strongest first.
type Match struct {
	Round int
	Hands []evaluator.Hand
	Ranks []evaluator.HandRank
	At    time.Time
}

// Reporter receives every match. An error stops the run.
type Reporter interface {
	Report(m Match) error
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(m Match) error

func (f ReporterFunc) Report(m Match) error { return f(m) }

// Summary describes a finished or interrupted run
type Summary struct {
	Mode           Mode                `json:"mode"`
	Threshold      evaluator.Category  `json:"threshold"`
	Seed           int64               `json:"seed"`
	Rounds         int                 `json:"rounds"`
	Matches        int                 `json:"matches"`
	Elapsed        time.Duration       `json:"-"`
	ElapsedSeconds float64             `json:"elapsed_seconds"`
	Tally          statistics.Snapshot `json:"tally"`
}

// Runner executes the dealing loop
type Runner struct {
	config Config
	deck   *deck.Deck

	tally   statistics.Tally
	rounds  int
	matches int
	started time.Time
	begun   bool
}

// NewRunner creates a runner, filling in a discard logger and real clock when unset
func NewRunner(config Config) (*Runner, error) {
	switch config.Mode {
	case ModePairs, ModeHigh:
	default:
		return nil, fmt.Errorf("unknown mode %q", config.Mode)
	}
	if !config.Threshold.Valid() {
		return nil, fmt.Errorf("invalid threshold %d", config.Threshold)
	}
	if config.Reporter == nil {
		return nil, errors.New("reporter is required")
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}

	return &Runner{
		config: config,
		deck:   deck.NewDeck(randutil.New(config.Seed)),
	}, nil
}

// Run deals until ctx is cancelled or the match limit is reached. It returns
// ctx.Err() on cancellation and nil when the limit is reached.
func (r *Runner) Run(ctx context.Context) error {
	r.started = r.config.Clock.Now()
	r.begun = true
	r.config.Logger.Info("Dealing",
		"mode", r.config.Mode,
		"threshold", r.config.Threshold,
		"seed", r.config.Seed,
		"limit", r.config.Limit)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m, ok, err := r.round()
		if err != nil {
			return err
		}

		r.rounds++
		if r.config.ProgressEvery > 0 && r.rounds%r.config.ProgressEvery == 0 {
			r.config.Logger.Debug("Progress",
				"rounds", r.rounds,
				"matches", r.matches,
				"elapsed", r.config.Clock.Since(r.started))
		}
		if !ok {
			continue
		}

		r.matches++
		m.Round = r.rounds
		m.At = r.config.Clock.Now()
		if err := r.config.Reporter.Report(m); err != nil {
			return fmt.Errorf("report match %d: %w", r.matches, err)
		}

		if r.config.Limit > 0 && r.matches >= r.config.Limit {
			r.config.Logger.Info("Match limit reached", "matches", r.matches, "rounds", r.rounds)
			return nil
		}
	}
}

// round deals one round from a full deck and reports whether it qualifies
func (r *Runner) round() (Match, bool, error) {
	numHands := 1
	if r.config.Mode == ModePairs {
		numHands = 2
	}

	r.deck.Reset()
	dealt, err := r.deck.Deal(numHands, evaluator.HandSize)
	if err != nil {
		return Match{}, false, err
	}

	m := Match{
		Hands: make([]evaluator.Hand, numHands),
		Ranks: make([]evaluator.HandRank, numHands),
	}
	qualifies := true
	for i, cards := range dealt {
		h, err := evaluator.NewHand(cards...)
		if err != nil {
			return Match{}, false, fmt.Errorf("dealt invalid hand: %w", err)
		}
		rank := evaluator.Classify(h)
		r.tally.Add(rank)

		m.Hands[i] = h
		m.Ranks[i] = rank
		if rank.Category.Strength() <= r.config.Threshold.Strength() {
			qualifies = false
		}
	}

	if numHands == 2 && m.Ranks[1].Beats(m.Ranks[0]) {
		m.Hands[0], m.Hands[1] = m.Hands[1], m.Hands[0]
		m.Ranks[0], m.Ranks[1] = m.Ranks[1], m.Ranks[0]
	}
	return m, qualifies, nil
}

// Summary reports the run so far
func (r *Runner) Summary() Summary {
	var elapsed time.Duration
	if r.begun {
		elapsed = r.config.Clock.Since(r.started)
	}
	return Summary{
		Mode:           r.config.Mode,
		Threshold:      r.config.Threshold,
		Seed:           r.config.Seed,
		Rounds:         r.rounds,
		Matches:        r.matches,
		Elapsed:        elapsed,
		ElapsedSeconds: elapsed.Seconds(),
		Tally:          r.tally.Snapshot(),
	}
}

// Tally returns a copy of the per-category counts of every dealt hand
func (r *Runner) Tally() statistics.Tally {
	return r.tally
}
