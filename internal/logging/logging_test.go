package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/marcus/exnote/internal/config"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default().Log
	cfg.Path = filepath.Join(dir, "logs", "exnote.log")

	logger, err := New(cfg, false)
	require.NoError(t, err)

	logger.Info("notes: loaded", zap.Int("count", 3))
	logger.Debug("hidden at info level")
	_ = logger.Sync()

	data, err := os.ReadFile(cfg.Path)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "notes: loaded", entry["message"])
	assert.EqualValues(t, 3, entry["count"])
	assert.Contains(t, entry, "timestamp")
}

func TestNew_DebugOverridesLevel(t *testing.T) {
	cfg := config.Default().Log
	cfg.Path = filepath.Join(t.TempDir(), "exnote.log")
	cfg.Level = "error"

	logger, err := New(cfg, true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := config.Default().Log
	cfg.Path = filepath.Join(t.TempDir(), "exnote.log")
	cfg.Level = "loud"

	_, err := New(cfg, false)
	assert.Error(t, err)
}

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, err := New(config.LogConfig{}, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}
