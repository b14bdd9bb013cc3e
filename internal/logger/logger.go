// Package logger provides structured logging for bleprofile using zerolog.
//
// Logs go to stderr by default so they never interleave with the operator
// prompt and device listing printed on stdout.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var globalLogger zerolog.Logger

// Config controls log level and destination.
type Config struct {
	Level  string `yaml:"level"`
	Debug  bool   `yaml:"debug"`
	Output string `yaml:"output"`
}

func init() {
	globalLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.TimeFieldFormat = time.RFC3339
}

// Init replaces the global logger according to config.
func Init(config Config) error {
	var output io.Writer = os.Stderr
	if config.Output == "stdout" {
		output = os.Stdout
	}

	level := zerolog.InfoLevel
	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		var err error
		level, err = zerolog.ParseLevel(config.Level)
		if err != nil {
			return err
		}
	}

	globalLogger = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return nil
}

// GetLogger returns the global logger.
func GetLogger() zerolog.Logger {
	return globalLogger
}

// WithComponent returns a child of the global logger tagged with component.
func WithComponent(component string) zerolog.Logger {
	return globalLogger.With().Str("component", component).Logger()
}

// NewTestLogger returns a logger that discards everything.
func NewTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.Disabled)
}
