// Package config handles the XDG configuration directory and the optional
// config.yaml settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "todolist"

	// ConfigFile is the settings filename inside the config directory.
	ConfigFile = "config.yaml"
)

// Config holds configuration paths and settings.
// Settings are layered: defaults, then config.yaml, then environment,
// then command-line flags (applied by the caller).
type Config struct {
	// Dir is the configuration directory path.
	Dir string `yaml:"-"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug"`

	// Quiet suppresses informational output.
	Quiet bool `yaml:"quiet"`

	// Color enables terminal styling of task output.
	Color bool `yaml:"color"`

	// LogLevel is one of debug, info, warn, error. Debug overrides it.
	LogLevel string `yaml:"log_level"`

	// Sources lists where settings were loaded from, in order.
	Sources []string `yaml:"-"`
}

// New creates a Config for the default or specified config directory and
// loads config.yaml from it if present.
// If configDir is empty, uses XDG_CONFIG_HOME/todolist or $HOME/.config/todolist.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{Dir: dir, LogLevel: "info", Sources: []string{"defaults"}}

	if err := cfg.loadFile(cfg.Path()); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Path returns the path to config.yaml.
func (c *Config) Path() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// loadFile merges settings from path. A missing file is not an error.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	// Unknown keys are errors so a misspelled setting is not silently ignored.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if err := validateLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	c.Sources = append(c.Sources, path)
	return nil
}

// applyEnv overrides settings from TODOLIST_* variables and NO_COLOR.
// Unparseable boolean values are ignored.
func (c *Config) applyEnv() {
	applied := false
	if v, ok := envBool("TODOLIST_DEBUG"); ok {
		c.Debug = v
		applied = true
	}
	if v, ok := envBool("TODOLIST_QUIET"); ok {
		c.Quiet = v
		applied = true
	}
	if v := os.Getenv("TODOLIST_LOG_LEVEL"); v != "" && validateLogLevel(v) == nil {
		c.LogLevel = strings.ToLower(v)
		applied = true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Color = false
		applied = true
	}
	if applied {
		c.Sources = append(c.Sources, "env")
	}
}

func envBool(key string) (bool, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

func validateLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log_level: %q", level)
	}
}
