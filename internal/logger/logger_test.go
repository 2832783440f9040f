package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   Level
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.WarnLevel},
		{"verbose", zapcore.WarnLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "ParseLevel(%q)", tt.in)
	}
}

func TestInit_ConsoleRespectsLevel(t *testing.T) {
	restore := Replace(zap.NewNop())
	defer restore()

	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: InfoLevel, Console: &buf}))

	Debug("hidden")
	Info("shown", zap.String("path", "song.lrc"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "song.lrc")
}

func TestInit_WritesFile(t *testing.T) {
	restore := Replace(zap.NewNop())
	defer restore()

	path := filepath.Join(t.TempDir(), "logs", "lrctoolbox.log")
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: DebugLevel, Console: &buf, OutputPath: path}))

	Warn("written to file")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"msg":"written to file"`), "log file = %q", data)
}

func TestReplace_Restores(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := Replace(zap.New(core))

	Error("captured")
	restore()
	Error("not captured")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "captured", logs.All()[0].Message)
}
