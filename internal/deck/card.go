package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when card notation cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit. Suits carry no ordering for hand strength.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in deck construction order
var Suits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

// String returns the one-letter suit code
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Rank represents a card rank as its face value (2-14, Ace high)
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const (
	MinRank = Two
	MaxRank = Ace
)

// Valid reports whether r is within 2..14
func (r Rank) Valid() bool {
	return r >= MinRank && r <= MaxRank
}

// String returns the rank token used in card notation
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card. Cards are plain values and compare with ==.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card. It panics if the rank is outside 2..14.
func NewCard(suit Suit, rank Rank) Card {
	if !rank.Valid() {
		panic(fmt.Sprintf("deck: rank %d out of range", int(rank)))
	}
	return Card{Suit: suit, Rank: rank}
}

// String returns the card notation, e.g. "AS" or "10H"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Value returns the numeric face value of the card (Ace = 14)
func (c Card) Value() int {
	return int(c.Rank)
}

// ParseCard parses a single card such as "AS", "10h" or "Td"
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank, err := parseRank(s[:len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}
	suit, err := parseSuit(s[len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// ParseCards parses a list of cards separated by spaces or commas.
// Surrounding brackets are ignored so that Hand.String output round-trips.
func ParseCards(s string) ([]Card, error) {
	s = strings.Trim(strings.TrimSpace(s), "[]")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	cards := make([]Card, 0, len(fields))
	for i, f := range fields {
		card, err := ParseCard(f)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(s string) (Rank, error) {
	switch s {
	case "A":
		return Ace, nil
	case "K":
		return King, nil
	case "Q":
		return Queen, nil
	case "J":
		return Jack, nil
	case "T", "10":
		return Ten, nil
	case "9":
		return Nine, nil
	case "8":
		return Eight, nil
	case "7":
		return Seven, nil
	case "6":
		return Six, nil
	case "5":
		return Five, nil
	case "4":
		return Four, nil
	case "3":
		return Three, nil
	case "2":
		return Two, nil
	default:
		return 0, fmt.Errorf("unknown rank %q", s)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'C':
		return Clubs, nil
	case 'D':
		return Diamonds, nil
	case 'H':
		return Hearts, nil
	case 'S':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}
