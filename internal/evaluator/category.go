package evaluator

import (
	"fmt"
	"strings"
)

// Category is one of the ten five-card hand tiers. Each constant carries an
// explicit strength value; comparisons use Strength rather than declaration order.
type Category uint8

const (
	HighCard      Category = 0
	Pair          Category = 1
	TwoPair       Category = 2
	ThreeOfAKind  Category = 3
	Straight      Category = 4
	Flush         Category = 5
	FullHouse     Category = 6
	FourOfAKind   Category = 7
	StraightFlush Category = 8
	RoyalFlush    Category = 9
)

// NumCategories is the number of hand categories
const NumCategories = 10

var categoryLabels = [NumCategories]string{
	HighCard:      "High card",
	Pair:          "Pair",
	TwoPair:       "Two pair",
	ThreeOfAKind:  "Three of a kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full house",
	FourOfAKind:   "Four of a kind",
	StraightFlush: "Straight flush",
	RoyalFlush:    "Royal Flush",
}

// Categories returns all categories from weakest to strongest
func Categories() []Category {
	out := make([]Category, NumCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Strength returns the category's position in poker strength order (0 = High card)
func (c Category) Strength() int {
	return int(c)
}

// Valid reports whether c is one of the ten defined categories
func (c Category) Valid() bool {
	return int(c) < NumCategories
}

// String returns the display label, e.g. "Full house"
func (c Category) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return categoryLabels[c]
}

// MarshalText encodes the category as its display label
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category using ParseCategory
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory accepts a label in any case with spaces, dashes or
// underscores ("Full house", "full-house", "FULL_HOUSE").
func ParseCategory(s string) (Category, error) {
	want := normalizeLabel(s)
	for i, label := range categoryLabels {
		if normalizeLabel(label) == want {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown hand category %q", s)
}

func normalizeLabel(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
