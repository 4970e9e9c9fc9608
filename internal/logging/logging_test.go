package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/mcdm/internal/logging"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)

	log.Debug("weights ready", zap.Int("criteria", 4))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "weights ready", entry["msg"])
	assert.EqualValues(t, 4, entry["criteria"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Level: "WARN", Output: &buf})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New(logging.Config{Level: "loud"})
	assert.Error(t, err)

	_, err = logging.New(logging.Config{Format: "xml"})
	assert.ErrorIs(t, err, logging.ErrUnknownFormat)
}

func TestVerbosity(t *testing.T) {
	assert.Equal(t, "warn", logging.Verbosity(0))
	assert.Equal(t, "info", logging.Verbosity(1))
	assert.Equal(t, "debug", logging.Verbosity(3))
}
