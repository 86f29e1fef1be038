// Package evaluator classifies five-card poker hands and orders the results.
package evaluator

import (
	"math/bits"
	"slices"

	"github.com/lox/pokerrank/internal/deck"
)

// rankGroup is a distinct rank and how many cards of it the hand holds
type rankGroup struct {
	rank  int
	count int
}

// Classify returns the category and tie-break key of a hand. The first
// matching rule from strongest to weakest wins.
//
// Hands should come from NewHand or ParseHand. A Hand literal holding a card
// with an out-of-range rank is not classified and yields HighCard with an
// empty tie-break.
func Classify(h Hand) HandRank {
	for _, c := range h {
		if !c.Rank.Valid() {
			return HandRank{Category: HighCard}
		}
	}

	var (
		counts   [deck.MaxRank + 1]int
		suitMask uint8
		values   = make([]int, 0, HandSize)
	)
	for _, c := range h {
		counts[c.Rank]++
		suitMask |= 1 << uint(c.Suit)
		values = append(values, c.Value())
	}
	slices.SortFunc(values, func(a, b int) int { return b - a })

	groups := groupRanks(&counts)
	maxValue := values[0]
	span := maxValue - values[HandSize-1]

	isFlush := bits.OnesCount8(suitMask) == 1
	straightHigh := 0
	if len(groups) == HandSize {
		switch {
		case span == 4:
			straightHigh = maxValue
		case isWheel(&counts):
			straightHigh = int(deck.Five)
		}
	}

	if isFlush && straightHigh > 0 {
		if straightHigh == int(deck.Ace) {
			return HandRank{Category: RoyalFlush, TieBreak: []int{straightHigh}}
		}
		return HandRank{Category: StraightFlush, TieBreak: []int{straightHigh}}
	}

	switch {
	case groups[0].count == 4:
		return HandRank{Category: FourOfAKind, TieBreak: groupRanksOf(groups)}
	case groups[0].count == 3 && groups[1].count == 2:
		return HandRank{Category: FullHouse, TieBreak: groupRanksOf(groups)}
	case isFlush:
		return HandRank{Category: Flush, TieBreak: values}
	case straightHigh > 0:
		return HandRank{Category: Straight, TieBreak: []int{straightHigh}}
	case groups[0].count == 3:
		return HandRank{Category: ThreeOfAKind, TieBreak: groupRanksOf(groups)}
	case groups[0].count == 2 && groups[1].count == 2:
		return HandRank{Category: TwoPair, TieBreak: groupRanksOf(groups)}
	case groups[0].count == 2:
		return HandRank{Category: Pair, TieBreak: groupRanksOf(groups)}
	}
	return HandRank{Category: HighCard, TieBreak: values}
}

// groupRanks orders distinct ranks by multiplicity, then by rank, both descending
func groupRanks(counts *[deck.MaxRank + 1]int) []rankGroup {
	groups := make([]rankGroup, 0, HandSize)
	for r := int(deck.MaxRank); r >= int(deck.MinRank); r-- {
		if counts[r] > 0 {
			groups = append(groups, rankGroup{rank: r, count: counts[r]})
		}
	}
	slices.SortStableFunc(groups, func(a, b rankGroup) int { return b.count - a.count })
	return groups
}

func groupRanksOf(groups []rankGroup) []int {
	out := make([]int, len(groups))
	for i, g := range groups {
		out[i] = g.rank
	}
	return out
}

// A-2-3-4-5: the ace plays low
func isWheel(counts *[deck.MaxRank + 1]int) bool {
	for _, r := range []deck.Rank{deck.Ace, deck.Two, deck.Three, deck.Four, deck.Five} {
		if counts[r] != 1 {
			return false
		}
	}
	return true
}
