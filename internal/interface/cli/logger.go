package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/YoshitsuguKoike/greet/internal/pkg/loglevel"
)

// LogLevel orders log severities.
type LogLevel = loglevel.Level

const (
	LogLevelDebug = loglevel.Debug
	LogLevelInfo  = loglevel.Info
	LogLevelWarn  = loglevel.Warn
	LogLevelError = loglevel.Error
)

// Logger provides levelled logging for the CLI.
type Logger struct {
	mu       sync.RWMutex
	minLevel LogLevel
	output   io.Writer
}

// NewLogger creates a new logger with the specified minimum level
func NewLogger(minLevel LogLevel, output io.Writer) *Logger {
	return &Logger{
		minLevel: minLevel,
		output:   output,
	}
}

// SetLevel changes the minimum log level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// GetLevel returns the current minimum log level
func (l *Logger) GetLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.minLevel
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LogLevelDebug, "DEBUG", format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LogLevelInfo, "INFO", format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LogLevelWarn, "WARN", format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LogLevelError, "ERROR", format, args...)
}

func (l *Logger) log(level LogLevel, prefix string, format string, args ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if level < l.minLevel {
		return
	}
	fmt.Fprintf(l.output, "%s: %s\n", prefix, fmt.Sprintf(format, args...))
}

// ParseLogLevel parses a level name, rejecting unknown values.
func ParseLogLevel(level string) (LogLevel, error) {
	return loglevel.Parse(level)
}

// LogLevelFromString parses a level name. Unknown values fall back to warn.
func LogLevelFromString(level string) LogLevel {
	return loglevel.FromString(level)
}
