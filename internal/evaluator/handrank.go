package evaluator

import (
	"strconv"
	"strings"
)

// HandRank is the evaluated strength of a hand: a category plus the
// tie-break values that order hands within that category.
type HandRank struct {
	Category Category `json:"category"`
	TieBreak []int    `json:"tie_break"`
}

// Compare returns -1 if h is weaker, 0 if equal, 1 if h is stronger
func (h HandRank) Compare(other HandRank) int {
	switch {
	case h.Category.Strength() > other.Category.Strength():
		return 1
	case h.Category.Strength() < other.Category.Strength():
		return -1
	}
	return compareTieBreak(h.TieBreak, other.TieBreak)
}

// Beats reports whether h is strictly stronger than other
func (h HandRank) Beats(other HandRank) bool {
	return h.Compare(other) > 0
}

// Equal reports whether h and other tie exactly
func (h HandRank) Equal(other HandRank) bool {
	return h.Compare(other) == 0
}

// String renders the rank as label plus tie-break, e.g. "Full house[11, 5]"
func (h HandRank) String() string {
	var b strings.Builder
	b.WriteString(h.Category.String())
	b.WriteByte('[')
	for i, v := range h.TieBreak {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}

// compareTieBreak compares element-wise, most significant first. When one
// sequence is a prefix of the other the shorter one is less.
func compareTieBreak(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] > b[i] {
			return 1
		}
		if a[i] < b[i] {
			return -1
		}
	}
	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	}
	return 0
}
