// Package log provides a small levelled logger with a coloured component prefix.
package log

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/backtrack-maze/config"
)

// Logger writes levelled lines tagged with a component name.
type Logger struct {
	logger *log.Logger
}

// New creates a Logger whose lines start with prefix rendered in color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix must not be empty")
	}
	if w == nil {
		return nil, errors.New("logger writer must not be nil")
	}

	tag := fmt.Sprintf("%s[%s]%s ", color, prefix, config.ColorReset)
	return &Logger{
		logger: log.New(w, tag, log.LstdFlags|log.Lmsgprefix),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger.Printf("%s[INFO]%s %s", config.LogInfoColor, config.LogColorReset, msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.logger.Printf("%s[WARNING]%s %s", config.LogWarningColor, config.LogColorReset, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.logger.Printf("%s[ERROR]%s %s", config.LogErrorColor, config.LogColorReset, msg)
}
