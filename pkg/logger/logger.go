// Package logger provides structured logging for the klatka hook.
//
// The hook protocol owns stdout and stderr, so loggers here only ever write
// to a file. A failed or missing log file must never break the hook path.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// Logger provides structured logging interface.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs info-level messages with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Error logs error-level messages with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// With returns a new logger with additional key-value pairs.
	With(keysAndValues ...any) Logger
}

// Level represents the log level.
type Level string

const (
	// LevelDebug represents debug-level logging.
	LevelDebug Level = "DEBUG"

	// LevelInfo represents info-level logging.
	LevelInfo Level = "INFO"

	// LevelError represents error-level logging.
	LevelError Level = "ERROR"

	// LogFilePermissions defines the file permissions for log files (owner read/write only).
	LogFilePermissions = 0o600

	// LogDirPermissions defines the permissions for the log directory.
	LogDirPermissions = 0o700
)

// DefaultLogPath returns the default log file location (~/.klatka/klatka.log).
func DefaultLogPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}

	return filepath.Join(homeDir, ".klatka", "klatka.log"), nil
}

// FileLogger implements Logger interface with file output only.
type FileLogger struct {
	file      io.Writer
	baseKVs   []any
	debugMode bool
	traceMode bool
}

// NewFileLogger creates a new FileLogger that appends to a log file,
// creating the parent directory when needed.
func NewFileLogger(filePath string, debugMode, traceMode bool) (*FileLogger, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), LogDirPermissions); err != nil {
		return nil, errors.Wrap(err, "failed to create log directory")
	}

	//nolint:gosec // File path is controlled and within user home directory
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermissions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open log file")
	}

	return &FileLogger{
		file:      file,
		debugMode: debugMode,
		traceMode: traceMode,
	}, nil
}

// NewFileLoggerWithWriter creates a new FileLogger with a custom writer.
func NewFileLoggerWithWriter(file io.Writer, debugMode, traceMode bool) *FileLogger {
	return &FileLogger{
		file:      file,
		debugMode: debugMode,
		traceMode: traceMode,
	}
}

// Debug logs debug-level messages.
func (l *FileLogger) Debug(msg string, keysAndValues ...any) {
	if !l.traceMode {
		return
	}

	l.log(LevelDebug, msg, keysAndValues...)
}

// Info logs info-level messages.
func (l *FileLogger) Info(msg string, keysAndValues ...any) {
	if !l.debugMode && !l.traceMode {
		return
	}

	l.log(LevelInfo, msg, keysAndValues...)
}

// Error logs error-level messages.
func (l *FileLogger) Error(msg string, keysAndValues ...any) {
	l.log(LevelError, msg, keysAndValues...)
}

// With returns a new logger with additional base key-value pairs.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (l *FileLogger) With(keysAndValues ...any) Logger {
	newKVs := make([]any, len(l.baseKVs)+len(keysAndValues))
	copy(newKVs, l.baseKVs)
	copy(newKVs[len(l.baseKVs):], keysAndValues)

	return &FileLogger{
		file:      l.file,
		baseKVs:   newKVs,
		debugMode: l.debugMode,
		traceMode: l.traceMode,
	}
}

// log writes a log entry to the file only (never stdout or stderr).
func (l *FileLogger) log(level Level, msg string, keysAndValues ...any) {
	timestamp := time.Now().UTC().Format("2006-01-02T15:04:05Z")

	var builder strings.Builder

	builder.WriteString(timestamp)
	builder.WriteString(" ")
	builder.WriteString(string(level))
	builder.WriteString(" ")
	builder.WriteString(msg)

	if len(l.baseKVs) > 0 {
		l.writeKeyValues(&builder, l.baseKVs)
	}

	if len(keysAndValues) > 0 {
		l.writeKeyValues(&builder, keysAndValues)
	}

	builder.WriteString("\n")

	if l.file != nil {
		_, _ = l.file.Write([]byte(builder.String()))
	}
}

// writeKeyValues formats key-value pairs and appends to builder.
func (l *FileLogger) writeKeyValues(builder *strings.Builder, kvs []any) {
	for i := 0; i < len(kvs); i += 2 {
		if i+1 >= len(kvs) {
			// Odd number of arguments, skip the last one
			break
		}

		key := fmt.Sprintf("%v", kvs[i])
		value := fmt.Sprintf("%v", kvs[i+1])

		builder.WriteString(" ")
		builder.WriteString(key)
		builder.WriteString("=")

		if strings.ContainsAny(value, " \t\n\"") {
			builder.WriteString(l.quote(value))
		} else {
			builder.WriteString(value)
		}
	}
}

// quote escapes and quotes a string value.
func (*FileLogger) quote(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")

	return "\"" + s + "\""
}

// NoOpLogger is a logger that does nothing.
type NoOpLogger struct{}

// NewNoOpLogger creates a new NoOpLogger.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debug does nothing.
func (*NoOpLogger) Debug(string, ...any) {}

// Info does nothing.
func (*NoOpLogger) Info(string, ...any) {}

// Error does nothing.
func (*NoOpLogger) Error(string, ...any) {}

// With returns the same NoOpLogger.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (n *NoOpLogger) With(...any) Logger {
	return n
}
