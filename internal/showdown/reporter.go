package showdown

import (
	"fmt"
	"io"

	"github.com/lox/pokerrank/internal/display"
)

// WriterReporter prints each match as one line
type WriterReporter struct {
	w         io.Writer
	formatter *display.Formatter
}

// NewWriterReporter creates a reporter writing to w
func NewWriterReporter(w io.Writer, color bool) *WriterReporter {
	return &WriterReporter{
		w:         w,
		formatter: display.NewFormatter(w, color),
	}
}

func (r *WriterReporter) Report(m Match) error {
	var line string
	switch len(m.Hands) {
	case 1:
		line = r.formatter.HighHand(m.Hands[0], m.Ranks[0])
	case 2:
		line = r.formatter.Showdown(m.Hands[0], m.Ranks[0], m.Hands[1], m.Ranks[1])
	default:
		return fmt.Errorf("cannot report match with %d hands", len(m.Hands))
	}
	_, err := fmt.Fprintln(r.w, line)
	return err
}
