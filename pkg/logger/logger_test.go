package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_FormatsMessages(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	log := NewWithCore(core)

	log.Info("Schedule: interview id=%d booked", 42)
	log.Warn("Schedule: slot %s taken", "09:00")
	log.Debug("hidden")

	entries := recorded.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Schedule: interview id=42 booked", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, "warn")
	require.NoError(t, err)

	log.Info("not written")
	log.Error("written id=%d", 7)
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written id=7")
	assert.NotContains(t, string(data), "not written")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}
