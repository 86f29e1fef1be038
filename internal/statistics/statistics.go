package statistics

import (
	"fmt"

	"github.com/lox/pokerrank/internal/evaluator"
)

// totalFiveCardHands is C(52,5)
const totalFiveCardHands = 2598960

// combinations per category over all five-card hands
var categoryCombinations = [evaluator.NumCategories]int{
	evaluator.HighCard:      1302540,
	evaluator.Pair:          1098240,
	evaluator.TwoPair:       123552,
	evaluator.ThreeOfAKind:  54912,
	evaluator.Straight:      10200,
	evaluator.Flush:         5108,
	evaluator.FullHouse:     3744,
	evaluator.FourOfAKind:   624,
	evaluator.StraightFlush: 36,
	evaluator.RoyalFlush:    4,
}

// Tally counts classified hands per category and remembers the strongest seen
type Tally struct {
	Hands  int
	Counts [evaluator.NumCategories]int
	Best   evaluator.HandRank
}

// Add records one classified hand
func (t *Tally) Add(rank evaluator.HandRank) {
	if t.Hands == 0 || rank.Beats(t.Best) {
		t.Best = rank
	}
	t.Hands++
	t.Counts[rank.Category]++
}

// Merge folds another tally into t
func (t *Tally) Merge(other Tally) {
	if other.Hands == 0 {
		return
	}
	if t.Hands == 0 || other.Best.Beats(t.Best) {
		t.Best = other.Best
	}
	t.Hands += other.Hands
	for i, n := range other.Counts {
		t.Counts[i] += n
	}
}

// Count returns the number of hands recorded in a category
func (t *Tally) Count(c evaluator.Category) int {
	return t.Counts[c]
}

// Frequency returns the observed share of hands in a category (0-1)
func (t *Tally) Frequency(c evaluator.Category) float64 {
	if t.Hands == 0 {
		return 0
	}
	return float64(t.Counts[c]) / float64(t.Hands)
}

// ExpectedFrequency returns the exact probability of a random five-card
// hand landing in category c
func ExpectedFrequency(c evaluator.Category) float64 {
	return float64(categoryCombinations[c]) / totalFiveCardHands
}

// AtLeast returns how many recorded hands rank in category c or better
func (t *Tally) AtLeast(c evaluator.Category) int {
	n := 0
	for i := c.Strength(); i < evaluator.NumCategories; i++ {
		n += t.Counts[i]
	}
	return n
}

// Validate checks the counts are consistent with the number of hands
func (t *Tally) Validate() error {
	if t.Hands < 0 {
		return fmt.Errorf("invalid hands count: %d", t.Hands)
	}

	total := 0
	for i, n := range t.Counts {
		if n < 0 {
			return fmt.Errorf("negative count for %s: %d", evaluator.Category(i), n)
		}
		total += n
	}
	if total != t.Hands {
		return fmt.Errorf("category total (%d) does not match hands count (%d)", total, t.Hands)
	}
	return nil
}

// Snapshot is the serialisable form of a tally
type Snapshot struct {
	Hands  int                        `json:"hands"`
	Counts map[evaluator.Category]int `json:"counts"`
	Best   *evaluator.HandRank        `json:"best,omitempty"`
}

// Snapshot returns a copy of the tally keyed by category label
func (t *Tally) Snapshot() Snapshot {
	s := Snapshot{
		Hands:  t.Hands,
		Counts: make(map[evaluator.Category]int, evaluator.NumCategories),
	}
	for i, n := range t.Counts {
		s.Counts[evaluator.Category(i)] = n
	}
	if t.Hands > 0 {
		best := t.Best
		s.Best = &best
	}
	return s
}
