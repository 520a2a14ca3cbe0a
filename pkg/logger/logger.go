// Package logger provides structured logging built on zerolog.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger defines the logging interface used throughout the application.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Warn(v ...interface{})
	Warnf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
	Fatal(v ...interface{})
	Fatalf(format string, v ...interface{})
}

const defaultService = "gotvmovies"

var setupOnce sync.Once

type zeroLogger struct {
	zl zerolog.Logger
}

// New creates a logger writing JSON lines to stdout. The level comes
// from the LOG_LEVEL environment variable and defaults to info.
func New() Logger {
	return NewWithOutput(os.Stdout)
}

// NewWithOutput creates a logger writing to w. Used by tests to capture
// output.
func NewWithOutput(w io.Writer) Logger {
	setupOnce.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339
	})
	zl := zerolog.New(w).
		Level(parseLevel(os.Getenv("LOG_LEVEL"))).
		With().
		Timestamp().
		Str("service", defaultService).
		Logger()
	return &zeroLogger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *zeroLogger) Debug(v ...interface{}) {
	l.zl.Debug().Msg(fmt.Sprint(v...))
}

func (l *zeroLogger) Debugf(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

func (l *zeroLogger) Info(v ...interface{}) {
	l.zl.Info().Msg(fmt.Sprint(v...))
}

func (l *zeroLogger) Infof(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

func (l *zeroLogger) Warn(v ...interface{}) {
	l.zl.Warn().Msg(fmt.Sprint(v...))
}

func (l *zeroLogger) Warnf(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

func (l *zeroLogger) Error(v ...interface{}) {
	l.zl.Error().Msg(fmt.Sprint(v...))
}

func (l *zeroLogger) Errorf(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

func (l *zeroLogger) Fatal(v ...interface{}) {
	l.zl.Fatal().Msg(fmt.Sprint(v...))
}

func (l *zeroLogger) Fatalf(format string, v ...interface{}) {
	l.zl.Fatal().Msgf(format, v...)
}
