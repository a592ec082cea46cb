package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localsearch/internal/errors"
)

func tempPaths(t *testing.T) Paths {
	t.Helper()
	base := t.TempDir()
	return Paths{
		ConfigFile:      filepath.Join(base, "config", "config.yaml"),
		IndexFile:       filepath.Join(base, "cache", "index.bin"),
		TelemetryFile:   filepath.Join(base, "cache", "telemetry.db"),
		DocumentBaseDir: filepath.Join(base, "documents"),
	}
}

func TestLoadFirstRunWritesDefaults(t *testing.T) {
	paths := tempPaths(t)

	cfg, err := Load(paths)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{paths.DocumentBaseDir}, cfg.DocumentDirectories)
	assert.Equal(t, "info", cfg.LogLevel)

	// First run creates the config file and the working directories.
	assert.FileExists(t, paths.ConfigFile)
	assert.DirExists(t, filepath.Dir(paths.IndexFile))
	assert.DirExists(t, paths.DocumentBaseDir)
}

func TestLoadSecondRunReadsBack(t *testing.T) {
	paths := tempPaths(t)

	first, err := Load(paths)
	require.NoError(t, err)

	second, err := Load(paths)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	paths := tempPaths(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(paths.ConfigFile), 0o755))

	want := &Config{
		DocumentDirectories: []string{"/abs/books", "papers"},
		FontName:            "Iosevka",
		Theme: Theme{
			Background: &Color{R: 0x18, G: 0x18, B: 0x18},
			Hovered:    &Color{R: 0x1e, G: 0x1e, B: 0x1e},
		},
		LogLevel: "debug",
	}
	require.NoError(t, Save(want, paths.ConfigFile))

	got, err := Load(paths)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadInvalidYAML(t *testing.T) {
	paths := tempPaths(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(paths.ConfigFile), 0o755))
	require.NoError(t, os.WriteFile(paths.ConfigFile, []byte("{not yaml: ["), 0o644))

	cfg, err := Load(paths)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestLoadDefaultsMissingLogLevel(t *testing.T) {
	paths := tempPaths(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(paths.ConfigFile), 0o755))
	require.NoError(t, os.WriteFile(paths.ConfigFile,
		[]byte("document_directories:\n  - books\n"), 0o644))

	cfg, err := Load(paths)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestRoots(t *testing.T) {
	paths := Paths{DocumentBaseDir: "/home/u/Documents/localsearch"}

	tests := []struct {
		name string
		dirs []string
		want []string
	}{
		{
			name: "relative entries join the base dir",
			dirs: []string{"books", "papers/drafts"},
			want: []string{
				"/home/u/Documents/localsearch/books",
				"/home/u/Documents/localsearch/papers/drafts",
			},
		},
		{
			name: "absolute entries stand alone",
			dirs: []string{"/srv/shared/docs"},
			want: []string{"/srv/shared/docs"},
		},
		{
			name: "mixed",
			dirs: []string{"books", "/srv/shared/docs"},
			want: []string{"/home/u/Documents/localsearch/books", "/srv/shared/docs"},
		},
		{
			name: "empty",
			dirs: nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{DocumentDirectories: tt.dirs}
			assert.Equal(t, tt.want, cfg.Roots(paths))
		})
	}
}
