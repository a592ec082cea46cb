// Package config loads and persists the localsearch configuration file.
//
// The config lives in the user config dir, the index blob in the user cache
// dir, and the default document tree under ~/Documents/localsearch. A
// missing config file is created with defaults on first run.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio"
	"gopkg.in/yaml.v3"

	"localsearch/internal/errors"
)

// appName names the per-user config/cache subdirectories.
const appName = "localsearch"

// Color is an RGB color used by the theme.
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// Theme is the display color scheme. Nil fields fall back to built-in
// defaults; the core indexing/search path never reads it.
type Theme struct {
	Background *Color `yaml:"background,omitempty"`
	Foreground *Color `yaml:"foreground,omitempty"`
	Idle       *Color `yaml:"idle,omitempty"`
	Hovered    *Color `yaml:"hovered,omitempty"`
	Clicked    *Color `yaml:"clicked,omitempty"`
}

// Config is the complete localsearch configuration.
type Config struct {
	// DocumentDirectories are the roots to index. Relative entries are
	// resolved against the documents base dir; absolute entries stand alone.
	DocumentDirectories []string `yaml:"document_directories"`

	// FontName optionally names a display font; irrelevant to the core.
	FontName string `yaml:"font_name,omitempty"`

	// Theme is the optional display color scheme; irrelevant to the core.
	Theme Theme `yaml:"theme"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Paths locates the files localsearch reads and writes.
type Paths struct {
	// ConfigFile is the YAML config location.
	ConfigFile string
	// IndexFile is the persisted index blob location.
	IndexFile string
	// TelemetryFile is the query telemetry database location.
	TelemetryFile string
	// DocumentBaseDir anchors relative document directories.
	DocumentBaseDir string
}

// DefaultPaths resolves the standard per-user locations.
func DefaultPaths() (Paths, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return Paths{}, fmt.Errorf("resolve user config dir: %w", err)
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return Paths{}, fmt.Errorf("resolve user cache dir: %w", err)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("resolve user home dir: %w", err)
	}
	return Paths{
		ConfigFile:      filepath.Join(configDir, appName, "config.yaml"),
		IndexFile:       filepath.Join(cacheDir, appName, "index.bin"),
		TelemetryFile:   filepath.Join(cacheDir, appName, "telemetry.db"),
		DocumentBaseDir: filepath.Join(homeDir, "Documents", appName),
	}, nil
}

// Default returns the configuration written on first run: the documents
// base dir as the sole root, info logging, built-in theme.
func Default(paths Paths) *Config {
	return &Config{
		DocumentDirectories: []string{paths.DocumentBaseDir},
		LogLevel:            "info",
	}
}

// Load reads the config file, creating it with defaults if absent. The
// config, cache, and document base directories are created as needed.
func Load(paths Paths) (*Config, error) {
	for _, dir := range []string{
		filepath.Dir(paths.ConfigFile),
		filepath.Dir(paths.IndexFile),
		paths.DocumentBaseDir,
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.New(errors.ErrCodeConfigInvalid, err.Error(), err).WithPath(dir)
		}
	}

	data, err := os.ReadFile(paths.ConfigFile)
	if os.IsNotExist(err) {
		cfg := Default(paths)
		if err := Save(cfg, paths.ConfigFile); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, errors.New(errors.ErrCodeConfigNotFound, err.Error(), err).WithPath(paths.ConfigFile)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.New(errors.ErrCodeConfigInvalid, err.Error(), err).WithPath(paths.ConfigFile)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}

// Save writes cfg to path atomically.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.New(errors.ErrCodeConfigInvalid, err.Error(), err).WithPath(path)
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return errors.New(errors.ErrCodeConfigInvalid, err.Error(), err).WithPath(path)
	}
	return nil
}

// Roots resolves the configured document directories to absolute paths.
// Relative entries are joined onto the documents base dir.
func (c *Config) Roots(paths Paths) []string {
	roots := make([]string, 0, len(c.DocumentDirectories))
	for _, dir := range c.DocumentDirectories {
		if filepath.IsAbs(dir) {
			roots = append(roots, dir)
			continue
		}
		roots = append(roots, filepath.Join(paths.DocumentBaseDir, dir))
	}
	return roots
}
