package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "info", want: slog.LevelInfo},
		{level: "warn", want: slog.LevelWarn},
		{level: "warning", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "DEBUG", want: slog.LevelDebug},
		{level: "bogus", want: slog.LevelInfo},
		{level: "", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.level))
		})
	}
}

func TestSetupWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	logger, cleanup, err := Setup(Config{
		Level:    "info",
		FilePath: path,
	})
	require.NoError(t, err)

	logger.Info("index built", slog.Int("documents", 42))
	logger.Debug("filtered out at info level")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "index built", entry["msg"])
	assert.Equal(t, float64(42), entry["documents"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestSetupWithoutFileDiscards(t *testing.T) {
	logger, cleanup, err := Setup(Config{Level: "info"})
	require.NoError(t, err)
	defer cleanup()

	// Must not panic with no sink configured.
	logger.Info("nowhere to go")
}

func TestRotatingWriterRotatesAtSizeLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	w, err := NewRotatingWriter(path, 1, 3)
	require.NoError(t, err)
	defer w.Close()

	chunk := bytes.Repeat([]byte("x"), 600*1024)

	_, err = w.Write(chunk)
	require.NoError(t, err)
	assert.NoFileExists(t, path+".1")

	// Second write would exceed 1MB, forcing a rotation first.
	_, err = w.Write(chunk)
	require.NoError(t, err)
	require.FileExists(t, path+".1")

	rotated, err := os.Stat(path + ".1")
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), rotated.Size())

	current, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), current.Size())
}

func TestRotatingWriterDropsOldestBeyondMaxFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	w, err := NewRotatingWriter(path, 1, 2)
	require.NoError(t, err)
	defer w.Close()

	// Each write exceeds the limit on its own, so every write after the
	// first rotates.
	chunk := bytes.Repeat([]byte("y"), 1100*1024)
	for i := 0; i < 4; i++ {
		_, err := w.Write(chunk)
		require.NoError(t, err)
	}

	assert.FileExists(t, path)
	assert.FileExists(t, path+".1")
	assert.FileExists(t, path+".2")
	assert.NoFileExists(t, path+".3")
}

func TestRotatingWriterAppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("earlier run\n"), 0o644))

	w, err := NewRotatingWriter(path, 1, 2)
	require.NoError(t, err)
	_, err = w.Write([]byte("this run\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "earlier run\nthis run\n", string(data))
}
