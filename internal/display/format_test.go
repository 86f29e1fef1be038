package display

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/lox/pokerrank/internal/evaluator"
	"github.com/lox/pokerrank/internal/statistics"
)

func classify(cards string) (evaluator.Hand, evaluator.HandRank) {
	h := evaluator.MustParseHand(cards)
	return h, evaluator.Classify(h)
}

func TestShowdownLinePlain(t *testing.T) {
	f := NewFormatter(&bytes.Buffer{}, false)

	h1, r1 := classify("JS JH JD 5C 5S")
	h2, r2 := classify("9H 8H 7H 6H 5H")

	want := fmt.Sprintf("%-25s (%-25s) >= %-25s (%-25s)", h2.String(), r2.String(), h1.String(), r1.String())
	assert.Equal(t, want, f.Showdown(h2, r2, h1, r1))
	assert.Contains(t, want, "[9H, 8H, 7H, 6H, 5H]      (Straight flush[9]")
}

func TestHighHandPlain(t *testing.T) {
	f := NewFormatter(&bytes.Buffer{}, false)

	h, r := classify("7S 7H 7D 7C KS")
	assert.Equal(t, "[7S, 7H, 7D, 7C, KS]: Four of a kind[7, 13]", f.HighHand(h, r))
}

func TestOutcomePlain(t *testing.T) {
	f := NewFormatter(&bytes.Buffer{}, false)

	res := evaluator.Showdown(evaluator.MustParseHand("AS KH QD JC 10S"), evaluator.MustParseHand("AH KD QC JS 10H"))
	assert.Equal(t, "tie", f.Outcome(res))

	res = evaluator.Showdown(evaluator.MustParseHand("AS AH QD JC 10S"), evaluator.MustParseHand("AD KD QC JS 10H"))
	assert.Equal(t, "second hand wins", f.Outcome(res))
}

func TestTallyTable(t *testing.T) {
	f := NewFormatter(&bytes.Buffer{}, false)

	var tally statistics.Tally
	_, r := classify("JS JH JD 5C 5S")
	tally.Add(r)
	_, r = classify("AS JH 9D 6C 3S")
	tally.Add(r)

	out := f.Tally(&tally)
	lines := strings.Split(strings.TrimSpace(out), "\n")

	assert.True(t, strings.HasPrefix(lines[0], "Category"))
	assert.True(t, strings.HasPrefix(lines[1], "Royal Flush"), lines[1])
	assert.Contains(t, out, "50.0000%")
	assert.Contains(t, out, "Best hand: Full house[11, 5]")
	assert.Regexp(t, `Total\s+2`, out)
}

func TestTallyTableAlignsWithColor(t *testing.T) {
	var tally statistics.Tally
	for _, cards := range []string{"JS JH JD 5C 5S", "AS JH 9D 6C 3S", "9H 8H 7H 6H 5H", "KS KH 4D 4C 2S"} {
		_, r := classify(cards)
		tally.Add(r)
	}

	plain := NewFormatter(&bytes.Buffer{}, false).Tally(&tally)

	var buf bytes.Buffer
	renderer := lipgloss.NewRenderer(&buf)
	renderer.SetColorProfile(termenv.TrueColor)
	colored := (&Formatter{color: true, styles: newStyles(renderer)}).Tally(&tally)

	assert.NotEqual(t, plain, colored, "expected escape codes in coloured output")
	assert.Equal(t, plain, ansi.Strip(colored))

	lines := strings.Split(strings.TrimSpace(plain), "\n")
	col := strings.Index(lines[0], "Hands")
	for _, line := range lines[1:12] {
		assert.NotEqual(t, byte(' '), line[col], "column misaligned: %q", line)
		assert.Equal(t, byte(' '), line[col-1], "column misaligned: %q", line)
	}
}

func TestTallyAtLeastColumn(t *testing.T) {
	var tally statistics.Tally
	for _, cards := range []string{"JS JH JD 5C 5S", "AS JH 9D 6C 3S", "KS KH 4D 4C 2S"} {
		_, r := classify(cards)
		tally.Add(r)
	}

	out := NewFormatter(&bytes.Buffer{}, false).Tally(&tally)
	assert.Regexp(t, `(?m)^Full house\s+1\s+1\s`, out)
	assert.Regexp(t, `(?m)^Two pair\s+1\s+2\s`, out)
	assert.Regexp(t, `(?m)^High card\s+1\s+3\s`, out)
}

func TestColorProfile(t *testing.T) {
	assert.Equal(t, termenv.Ascii, colorProfile(false, termenv.TrueColor))
	assert.Equal(t, termenv.ANSI256, colorProfile(true, termenv.ANSI256))
}

func TestPadIgnoresWiderText(t *testing.T) {
	assert.Equal(t, "abc  ", pad("abc", 5))
	assert.Equal(t, "abcdef", pad("abcdef", 5))
}
