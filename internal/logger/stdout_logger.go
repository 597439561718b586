package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// StdOutLogger implements the Logger interface using charmbracelet/log
type StdOutLogger struct {
	logger *log.Logger
}

// NewStdOutLogger creates a new StdOutLogger with default settings
func NewStdOutLogger() *StdOutLogger {
	logger := log.New(os.Stdout)
	logger.SetLevel(log.InfoLevel)
	return &StdOutLogger{logger: logger}
}

// NewStdOutLoggerWithLevel creates a new StdOutLogger with the given level
func NewStdOutLoggerWithLevel(level log.Level) *StdOutLogger {
	logger := log.New(os.Stdout)
	logger.SetLevel(level)
	return &StdOutLogger{logger: logger}
}

// Ensure StdOutLogger implements the Logger interface
var _ Logger = (*StdOutLogger)(nil)

func (l *StdOutLogger) Info(msg string, args ...interface{}) {
	if len(args) == 0 {
		l.logger.Info(msg)
		return
	}
	l.logger.With(args...).Info(msg)
}

func (l *StdOutLogger) Debug(msg string, args ...interface{}) {
	if len(args) == 0 {
		l.logger.Debug(msg)
		return
	}
	l.logger.With(args...).Debug(msg)
}

func (l *StdOutLogger) Warn(msg string, args ...interface{}) {
	if len(args) == 0 {
		l.logger.Warn(msg)
		return
	}
	l.logger.With(args...).Warn(msg)
}

func (l *StdOutLogger) Error(msg string, args ...interface{}) {
	if len(args) == 0 {
		l.logger.Error(msg)
		return
	}
	l.logger.With(args...).Error(msg)
}
