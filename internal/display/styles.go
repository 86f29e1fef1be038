package display

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pokerrank/internal/evaluator"
)

// styles holds the renderer-bound styles for one output stream
type styles struct {
	header  lipgloss.Style
	hand    lipgloss.Style
	weak    lipgloss.Style
	made    lipgloss.Style
	strong  lipgloss.Style
	monster lipgloss.Style
	winner  lipgloss.Style
	tie     lipgloss.Style
	percent lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		hand: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")),
		weak: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		made: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
		strong: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		monster: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		winner: r.NewStyle().
			Foreground(lipgloss.Color("10")),
		tie: r.NewStyle().
			Foreground(lipgloss.Color("11")),
		percent: r.NewStyle().
			Foreground(lipgloss.Color("9")),
		muted: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// category picks a style by hand tier
func (s styles) category(c evaluator.Category) lipgloss.Style {
	switch {
	case c >= evaluator.StraightFlush:
		return s.monster
	case c >= evaluator.FullHouse:
		return s.strong
	case c >= evaluator.ThreeOfAKind:
		return s.made
	default:
		return s.weak
	}
}

// colorProfile returns the termenv profile for a stream; Ascii disables colour
func colorProfile(color bool, detected termenv.Profile) termenv.Profile {
	if !color {
		return termenv.Ascii
	}
	return detected
}
