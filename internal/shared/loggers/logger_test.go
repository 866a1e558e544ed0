package loggers

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_WritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Info().Str(FieldJob, "fmp").Int(FieldScanned, 1000).Msg("progress")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "fmp", line[FieldJob])
	assert.Equal(t, float64(1000), line[FieldScanned])
	assert.Equal(t, "progress", line["message"])
	assert.Contains(t, line, "time")
}

func TestNewWithWriter_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("warn", &buf)
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud")
	assert.Error(t, err)
}

func TestCtx_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("debug", &buf)
	require.NoError(t, err)

	ctx := logger.With().Str(FieldRunID, "run-1").Logger().WithContext(context.Background())
	Ctx(ctx).Debug().Msg("hello")

	assert.Contains(t, buf.String(), `"run_id":"run-1"`)
}
