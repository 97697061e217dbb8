// Package logging builds the leveled stderr logger used across todolist.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todolist/internal/config"
)

// Prefix is prepended to every log line.
const Prefix = "todolist"

// New creates a logger writing to w with the level taken from cfg.
// cfg.Debug forces debug level and turns on timestamps.
func New(w io.Writer, cfg *config.Config) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           Level(cfg),
		Formatter:       log.TextFormatter,
		ReportTimestamp: cfg.Debug,
		Prefix:          Prefix,
	})
}

// Level resolves the configured log level. Unknown values fall back to info.
func Level(cfg *config.Config) log.Level {
	if cfg.Debug {
		return log.DebugLevel
	}
	level, err := log.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || cfg.LogLevel == "" {
		return log.InfoLevel
	}
	return level
}
