// Package config loads and persists writecontrol settings.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/writecontrol/writecontrol/internal/store"
)

// Config holds all configurable writecontrol settings.
type Config struct {
	// Debug enables diagnostic output. Mutable at runtime via the
	// debug command.
	Debug bool `json:"debug"`
	// LogDir overrides the session log directory.
	LogDir string `json:"log_dir,omitempty"`
	// DebugLogFile, when set, routes diagnostics to a rotated file
	// instead of stderr.
	DebugLogFile string `json:"debug_log_file,omitempty"`
}

// Defaults returns the default configuration values.
func Defaults() Config {
	return Config{
		Debug:  false,
		LogDir: store.DefaultDir(),
	}
}

// Path returns the global config file location:
// ~/.config/writecontrol/config.json.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "writecontrol", "config.json"), nil
}

// Load reads the global config file, returning defaults when it is
// absent.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Defaults(), err
	}
	return loadFile(path)
}

func loadFile(path string) (Config, error) {
	result := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return result, nil
		}
		return result, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return result, &ParseError{Path: path, Err: err}
	}

	result.Debug = cfg.Debug
	if cfg.LogDir != "" {
		result.LogDir = cfg.LogDir
	}
	if cfg.DebugLogFile != "" {
		result.DebugLogFile = cfg.DebugLogFile
	}
	return result, nil
}

// Save writes cfg to the global config file, creating the directory if
// needed. Used by the debug toggle command.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ParseError is returned when a config file exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse config file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
