// Package logger provides a leveled logging system for TUI applications.
// Output goes to a log file rather than stdout, which a terminal UI owns.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Level represents the logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes leveled, timestamped messages to a configurable destination.
type Logger struct {
	out    *log.Logger
	level  Level
	output io.Writer
}

// Config holds configuration for the logger.
type Config struct {
	Level     Level
	Output    io.Writer
	LogToFile bool
	LogFile   string
}

// DefaultConfig returns a default logger configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:  LevelInfo,
		Output: os.Stderr,
	}
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(config *Config) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	if config.LogToFile && config.LogFile != "" {
		dir := filepath.Dir(config.LogFile)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		file, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}

		output = file
	}

	return &Logger{
		out:    log.New(output, "", 0),
		level:  config.Level,
		output: output,
	}, nil
}

// NewSimpleLogger creates a logger that outputs to stderr with the given level.
func NewSimpleLogger(level Level) *Logger {
	logger, _ := NewLogger(&Config{Level: level, Output: os.Stderr}) // Safe to ignore error with this config

	return logger
}

// NewFileLogger creates a logger that outputs to a file with the given level.
func NewFileLogger(level Level, logFile string) (*Logger, error) {
	return NewLogger(&Config{
		Level:     level,
		LogToFile: true,
		LogFile:   logFile,
	})
}

// NewDiscardLogger creates a logger that drops everything, used in testing
// mode where logging side effects are suppressed.
func NewDiscardLogger() *Logger {
	logger, _ := NewLogger(&Config{Level: LevelError, Output: io.Discard})

	return logger
}

// formatMessage creates a formatted log message with timestamp and level.
func (l *Logger) formatMessage(level Level, format string, args ...interface{}) string {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)

	return fmt.Sprintf("[%s] [%s] %s", timestamp, level.String(), message)
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level <= LevelDebug {
		l.out.Println(l.formatMessage(LevelDebug, format, args...))
	}
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.level <= LevelInfo {
		l.out.Println(l.formatMessage(LevelInfo, format, args...))
	}
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	if l.level <= LevelError {
		l.out.Println(l.formatMessage(LevelError, format, args...))
	}
}

// SetLevel changes the logging level.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// GetLevel returns the current logging level.
func (l *Logger) GetLevel() Level {
	return l.level
}

// Close closes any file handles if the logger is writing to a file.
func (l *Logger) Close() error {
	if closer, ok := l.output.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}

// Global logger shared by all packages for the duration of one run.
var (
	globalLogger     *Logger
	globalLoggerOnce sync.Once
)

// InitGlobalLogger initializes the global logger writing to the given file.
// This should be called early in application initialization.
func InitGlobalLogger(level Level, logFile string) error {
	var err error

	globalLoggerOnce.Do(func() {
		globalLogger, err = NewFileLogger(level, logFile)
		if err != nil {
			// Fallback to stderr if file logging fails
			globalLogger = NewSimpleLogger(level)
		}
	})

	return err
}

// InitGlobalDiscardLogger installs a logger that drops everything.
func InitGlobalDiscardLogger() {
	globalLoggerOnce.Do(func() {
		globalLogger = NewDiscardLogger()
	})
}

// GetGlobalLogger returns the global logger instance.
// If not initialized, it creates a simple logger with Info level.
func GetGlobalLogger() *Logger {
	if globalLogger == nil {
		globalLogger = NewSimpleLogger(LevelInfo)
	}

	return globalLogger
}
