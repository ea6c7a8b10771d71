package pkg

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Component identifies a subsystem for log filtering.
type Component string

// Component identifiers used across softkbd.
const (
	ComponentLayout   Component = "layout"
	ComponentKeyboard Component = "keyboard"
	ComponentMacro    Component = "macro"
	ComponentConfig   Component = "config"
	ComponentMonitor  Component = "monitor"
	ComponentTyper    Component = "typer"
)

// LogFormat specifies the output format for logging.
type LogFormat int

// Log format options.
const (
	LogFormatText LogFormat = iota // Text format (default)
	LogFormatJSON                  // JSON format
)

var (
	// DefaultLogger is the logger shared by all softkbd packages.
	DefaultLogger *slog.Logger

	logLevel = new(slog.LevelVar)
	logMutex sync.RWMutex
	logOut   io.Writer = os.Stderr
)

func init() {
	logLevel.Set(slog.LevelWarn)
	DefaultLogger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

// ParseLogLevel converts a level name ("debug", "info", "warn", "error")
// to a slog level. Unknown names yield ErrInvalidParameter.
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelWarn, ErrInvalidParameter
	}
	return level, nil
}

// SetLogLevel sets the minimum log level.
func SetLogLevel(level slog.Level) {
	logMutex.Lock()
	defer logMutex.Unlock()
	logLevel.Set(level)
}

// GetLogLevel returns the current minimum log level.
func GetLogLevel() slog.Level {
	logMutex.RLock()
	defer logMutex.RUnlock()
	return logLevel.Level()
}

// SetLogger replaces the default logger.
func SetLogger(logger *slog.Logger) {
	logMutex.Lock()
	defer logMutex.Unlock()
	DefaultLogger = logger
}

// SetLogFormat rebuilds the default logger with the given format. Output
// keeps going to the writer installed by SetLogOutput (os.Stderr unless
// changed) at the current log level.
func SetLogFormat(format LogFormat) {
	logMutex.Lock()
	defer logMutex.Unlock()
	DefaultLogger = newLogger(format, logOut, &slog.HandlerOptions{Level: logLevel})
}

// SetLogOutput redirects the default logger to w, keeping a text format.
func SetLogOutput(w io.Writer) {
	logMutex.Lock()
	defer logMutex.Unlock()
	logOut = w
	DefaultLogger = newLogger(LogFormatText, w, &slog.HandlerOptions{Level: logLevel})
}

// NewLogger creates a new text logger writing to w.
func NewLogger(w io.Writer, opts *slog.HandlerOptions) *slog.Logger {
	return newLogger(LogFormatText, w, opts)
}

// NewJSONLogger creates a new JSON logger writing to w.
func NewJSONLogger(w io.Writer, opts *slog.HandlerOptions) *slog.Logger {
	return newLogger(LogFormatJSON, w, opts)
}

func newLogger(format LogFormat, w io.Writer, opts *slog.HandlerOptions) *slog.Logger {
	if opts == nil {
		opts = &slog.HandlerOptions{Level: logLevel}
	}
	if format == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func current() *slog.Logger {
	logMutex.RLock()
	defer logMutex.RUnlock()
	return DefaultLogger
}

// LogEnabled reports whether a message at level would be emitted. Callers
// use it to skip building expensive attributes in hot loops.
func LogEnabled(level slog.Level) bool {
	return current().Enabled(context.Background(), level)
}

func logAt(level slog.Level, component Component, msg string, args []any) {
	logger := current()
	if !logger.Enabled(context.Background(), level) {
		return
	}
	logger.Log(context.Background(), level, msg, append([]any{"component", string(component)}, args...)...)
}

// LogDebug logs a debug message with the given component.
func LogDebug(component Component, msg string, args ...any) {
	logAt(slog.LevelDebug, component, msg, args)
}

// LogInfo logs an info message with the given component.
func LogInfo(component Component, msg string, args ...any) {
	logAt(slog.LevelInfo, component, msg, args)
}

// LogWarn logs a warning message with the given component.
func LogWarn(component Component, msg string, args ...any) {
	logAt(slog.LevelWarn, component, msg, args)
}

// LogError logs an error message with the given component.
func LogError(component Component, msg string, args ...any) {
	logAt(slog.LevelError, component, msg, args)
}
