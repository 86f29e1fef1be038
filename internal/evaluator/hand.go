package evaluator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/pokerrank/internal/deck"
)

// HandSize is the number of cards in an evaluated hand
const HandSize = 5

var (
	// ErrInvalidHandSize is returned when a hand does not hold exactly five cards
	ErrInvalidHandSize = errors.New("hand must contain exactly 5 cards")
	// ErrDuplicateCard is returned when the same card appears twice in a hand
	ErrDuplicateCard = errors.New("duplicate card in hand")
)

// Hand is five distinct cards in dealt order
type Hand [HandSize]deck.Card

// NewHand builds a hand, rejecting anything but five distinct valid cards
func NewHand(cards ...deck.Card) (Hand, error) {
	var h Hand
	if len(cards) != HandSize {
		return h, fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(cards))
	}

	for i, card := range cards {
		if !card.Rank.Valid() {
			return h, fmt.Errorf("%w: rank %d", deck.ErrInvalidCard, int(card.Rank))
		}
		for _, prev := range cards[:i] {
			if prev == card {
				return h, fmt.Errorf("%w: %s", ErrDuplicateCard, card)
			}
		}
		h[i] = card
	}
	return h, nil
}

// ParseHand parses card notation such as "AS KD 10C 2H 2S" into a hand
func ParseHand(s string) (Hand, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return Hand{}, err
	}
	return NewHand(cards...)
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}

// Cards returns a copy of the cards as a slice
func (h Hand) Cards() []deck.Card {
	out := make([]deck.Card, HandSize)
	copy(out, h[:])
	return out
}

// String renders the hand as a bracketed list, e.g. "[AS, KD, 10C, 2H, 2S]"
func (h Hand) String() string {
	parts := make([]string, HandSize)
	for i, c := range h {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
