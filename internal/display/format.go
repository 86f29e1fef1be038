// Package display renders hands, ranks and tallies for terminal output.
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokerrank/internal/evaluator"
	"github.com/lox/pokerrank/internal/statistics"
)

// columnWidth is the padded width of each hand and rank field in a showdown line
const columnWidth = 25

// Formatter renders output for one stream. With colour disabled the output
// is plain text and safe to compare byte-for-byte.
type Formatter struct {
	color  bool
	styles styles
}

// NewFormatter creates a formatter bound to w
func NewFormatter(w io.Writer, color bool) *Formatter {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(colorProfile(color, r.ColorProfile()))
	return &Formatter{
		color:  color,
		styles: newStyles(r),
	}
}

func (f *Formatter) render(style lipgloss.Style, s string) string {
	if !f.color {
		return s
	}
	return style.Render(s)
}

// pad left-aligns s in a field of width runes before styling, so escape
// codes never count toward alignment
func pad(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// Rank renders a hand rank, e.g. "Full house[11, 5]"
func (f *Formatter) Rank(r evaluator.HandRank) string {
	return f.render(f.styles.category(r.Category), r.String())
}

// Showdown renders two hands, stronger first:
// "hand1 (rank1) >= hand2 (rank2)" with each field padded to 25 columns
func (f *Formatter) Showdown(h1 evaluator.Hand, r1 evaluator.HandRank, h2 evaluator.Hand, r2 evaluator.HandRank) string {
	return fmt.Sprintf("%s (%s) >= %s (%s)",
		f.render(f.styles.hand, pad(h1.String(), columnWidth)),
		f.render(f.styles.category(r1.Category), pad(r1.String(), columnWidth)),
		f.render(f.styles.hand, pad(h2.String(), columnWidth)),
		f.render(f.styles.category(r2.Category), pad(r2.String(), columnWidth)),
	)
}

// HighHand renders a single hand as "hand: rank"
func (f *Formatter) HighHand(h evaluator.Hand, r evaluator.HandRank) string {
	return fmt.Sprintf("%s: %s", f.render(f.styles.hand, h.String()), f.Rank(r))
}

// Outcome renders the verdict of a two-hand comparison
func (f *Formatter) Outcome(res evaluator.ShowdownResult) string {
	switch res.Outcome {
	case evaluator.FirstWins:
		return f.render(f.styles.winner, "first hand wins")
	case evaluator.SecondWins:
		return f.render(f.styles.winner, "second hand wins")
	default:
		return f.render(f.styles.tie, "tie")
	}
}

// tableGap separates tally columns
const tableGap = 2

type tableCell struct {
	text  string
	style *lipgloss.Style
}

// Tally renders per-category counts, the cumulative count at or above each
// category, and observed against exact frequencies
func (f *Formatter) Tally(t *statistics.Tally) string {
	header := &f.styles.header
	rows := [][]tableCell{{
		{"Category", header}, {"Hands", header}, {"At least", header}, {"Observed", header}, {"Expected", header},
	}}

	cats := evaluator.Categories()
	for i := len(cats) - 1; i >= 0; i-- {
		c := cats[i]
		style := f.styles.category(c)
		rows = append(rows, []tableCell{
			{c.String(), &style},
			{strconv.Itoa(t.Count(c)), nil},
			{strconv.Itoa(t.AtLeast(c)), nil},
			{fmt.Sprintf("%.4f%%", 100*t.Frequency(c)), &f.styles.percent},
			{fmt.Sprintf("%.4f%%", 100*statistics.ExpectedFrequency(c)), &f.styles.muted},
		})
	}
	rows = append(rows, []tableCell{{"Total", header}, {strconv.Itoa(t.Hands), nil}})

	// widths come from the unstyled text
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(cell.text))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			text := cell.text
			if i < len(row)-1 {
				text = pad(text, widths[i]+tableGap)
			}
			if cell.style != nil {
				text = f.render(*cell.style, text)
			}
			b.WriteString(text)
		}
		b.WriteByte('\n')
	}

	if t.Hands > 0 {
		fmt.Fprintf(&b, "Best hand: %s\n", f.Rank(t.Best))
	}
	return b.String()
}
