package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerrank/cmd/pokerrank/shared"
	"github.com/lox/pokerrank/internal/deck"
	"github.com/lox/pokerrank/internal/display"
	"github.com/lox/pokerrank/internal/evaluator"
	"github.com/lox/pokerrank/internal/randutil"
	"github.com/lox/pokerrank/internal/statistics"
)

// RankCmd classifies a single hand
type RankCmd struct {
	Hand string `arg:"" help:"Five cards, e.g. 'AS KS QS JS 10S'"`
}

func (c *RankCmd) Run(g *Globals) error {
	return c.run(os.Stdout, !g.NoColor)
}

func (c *RankCmd) run(w io.Writer, color bool) error {
	hand, err := evaluator.ParseHand(c.Hand)
	if err != nil {
		return err
	}
	f := display.NewFormatter(w, color)
	_, err = fmt.Fprintln(w, f.Rank(evaluator.Classify(hand)))
	return err
}

// CompareCmd decides a showdown between two hands
type CompareCmd struct {
	First  string `arg:"" help:"First hand"`
	Second string `arg:"" help:"Second hand"`
}

func (c *CompareCmd) Run(g *Globals) error {
	return c.run(os.Stdout, !g.NoColor)
}

func (c *CompareCmd) run(w io.Writer, color bool) error {
	first, err := evaluator.ParseHand(c.First)
	if err != nil {
		return fmt.Errorf("first hand: %w", err)
	}
	second, err := evaluator.ParseHand(c.Second)
	if err != nil {
		return fmt.Errorf("second hand: %w", err)
	}

	res := evaluator.Showdown(first, second)
	f := display.NewFormatter(w, color)

	h1, r1, h2, r2 := first, res.First, second, res.Second
	if res.Outcome == evaluator.SecondWins {
		h1, r1, h2, r2 = h2, r2, h1, r1
	}
	_, err = fmt.Fprintf(w, "%s\n%s\n", f.Showdown(h1, r1, h2, r2), f.Outcome(res))
	return err
}

// ProfileCmd classifies random hands in parallel and prints the category table
type ProfileCmd struct {
	Hands   int   `kong:"default='100000',help='Number of random hands to classify'"`
	Workers int   `kong:"default='0',help='Worker goroutines (0 = GOMAXPROCS)'"`
	Seed    int64 `kong:"default='0',help='Deterministic RNG seed (0 = time based)'"`
}

func (c *ProfileCmd) Run(g *Globals) error {
	logger, err := shared.SetupLogger("info", g.Debug, g.JSONLogs)
	if err != nil {
		return err
	}
	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	return c.run(ctx, logger, os.Stdout, !g.NoColor)
}

// profileBatch bounds how many hands are held in memory at once
const profileBatch = 1 << 16

func (c *ProfileCmd) run(ctx context.Context, logger *log.Logger, w io.Writer, color bool) error {
	if c.Hands <= 0 {
		return fmt.Errorf("hands must be positive: %d", c.Hands)
	}

	seed := randutil.Seed(c.Seed)
	d := deck.NewDeck(randutil.New(seed))
	logger.Debug("Classifying hands", "hands", c.Hands, "workers", c.Workers, "seed", seed)

	var total statistics.Tally
	for done := 0; done < c.Hands; {
		batch, err := tallyBatch(ctx, d, min(profileBatch, c.Hands-done), c.Workers)
		if err != nil {
			return err
		}
		total.Merge(batch)
		done += batch.Hands
		logger.Debug("Batch classified", "done", done, "hands", c.Hands)
	}
	if err := total.Validate(); err != nil {
		return err
	}

	_, err := fmt.Fprint(w, display.NewFormatter(w, color).Tally(&total))
	return err
}

// tallyBatch deals n random hands and classifies them in parallel
func tallyBatch(ctx context.Context, d *deck.Deck, n, workers int) (statistics.Tally, error) {
	var tally statistics.Tally
	hands, err := randomHands(d, n)
	if err != nil {
		return tally, err
	}
	ranks, err := evaluator.ClassifyAll(ctx, hands, workers)
	if err != nil {
		return tally, err
	}
	for _, r := range ranks {
		tally.Add(r)
	}
	return tally, nil
}

// randomHands deals n independent hands, refilling the deck before each
func randomHands(d *deck.Deck, n int) ([]evaluator.Hand, error) {
	hands := make([]evaluator.Hand, n)
	for i := range hands {
		d.Reset()
		cards, err := d.DrawN(evaluator.HandSize)
		if err != nil {
			return nil, err
		}
		if hands[i], err = evaluator.NewHand(cards...); err != nil {
			return nil, err
		}
	}
	return hands, nil
}
