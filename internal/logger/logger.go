// Package logger carries diagnostics for flowviz internals. Stdout belongs
// to the rendered diagram, so everything here goes through the stdlib log
// writer (stderr), and debug lines only appear when FLOWVIZ_DEBUG is set;
// --verbose flips that variable so a misbehaving watch or render session
// can be inspected without touching the frame output.
package logger

import (
	"fmt"
	"log"
	"os"
)

// DebugEnv is the environment variable that unlocks debug output.
const DebugEnv = "FLOWVIZ_DEBUG"

// Logger is the leveled interface flowviz packages log through. Methods
// take printf-style format strings.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// envLogger writes through the stdlib logger with a fixed prefix, such as
// "[watch]". Debug is re-checked against the environment on every call:
// --verbose sets DebugEnv after package init, so a snapshot taken at
// construction would go stale.
type envLogger struct {
	prefix string
}

// NewEnvLogger returns a Logger whose debug output is gated by DebugEnv.
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) printf(tag, format string, args ...interface{}) {
	if tag != "" {
		format = tag + format
	}
	log.Printf(l.prefix+" "+format, args...)
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if os.Getenv(DebugEnv) != "" {
		l.printf("", format, args...)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	l.printf("", format, args...)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	l.printf("WARN: ", format, args...)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	l.printf("ERROR: ", format, args...)
}

// noopLogger discards everything. Tests that exercise noisy paths use it
// to keep output clean.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage is one captured entry in a BufferLogger.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures messages for test assertions instead of writing
// them anywhere.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger returns an empty capturing logger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) capture(level, format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.capture("debug", format, args...)
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.capture("info", format, args...)
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.capture("warn", format, args...)
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.capture("error", format, args...)
}

// HasLevel reports whether any message was captured at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear drops all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}

var defaultLogger = NewEnvLogger("")

// Default returns the shared logger most packages use.
func Default() Logger {
	return defaultLogger
}

// SetDefault swaps the shared logger, usually for a Noop or BufferLogger
// in tests.
func SetDefault(l Logger) {
	defaultLogger = l
}
