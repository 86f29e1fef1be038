package shared

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a stderr logger. level is one of debug, info, warn
// or error; debug forces debug level regardless. json selects structured output.
func SetupLogger(level string, debug, json bool) (*log.Logger, error) {
	return newLogger(os.Stderr, level, debug, json)
}

func newLogger(w io.Writer, level string, debug, json bool) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		lvl = parsed
	}
	if debug {
		lvl = log.DebugLevel
	}

	opts := log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "pokerrank",
	}
	if json {
		opts.Formatter = log.JSONFormatter
	}
	return log.NewWithOptions(w, opts), nil
}
