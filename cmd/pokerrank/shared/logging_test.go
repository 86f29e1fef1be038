package shared

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		debug bool
		want  log.Level
	}{
		{"default", "", false, log.InfoLevel},
		{"warn", "warn", false, log.WarnLevel},
		{"debug flag overrides", "error", true, log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := newLogger(&bytes.Buffer{}, tt.level, tt.debug, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, "loud", false, false)
	assert.Error(t, err)
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "info", false, true)
	require.NoError(t, err)

	logger.Info("Dealing", "seed", 42)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Dealing", entry["msg"])
	assert.EqualValues(t, 42, entry["seed"])
}
