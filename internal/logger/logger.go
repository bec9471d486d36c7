// Package logger provides structured logging for the application. The TUI
// owns the terminal, so logs go to a file instead of stderr.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop().Sugar()
)

// Init configures file-backed logging. Before Init (and whenever path is
// empty) logging is a no-op.
func Init(path string) error {
	if path == "" {
		return nil
	}

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}

	l, err := config.Build()
	if err != nil {
		return err
	}

	mu.Lock()
	logger = l.Sugar()
	mu.Unlock()
	return nil
}

// Sync flushes buffered log entries.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = logger.Sync()
}

// Error logs an error message with key-value pairs.
func Error(msg string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Errorw(msg, args...)
}

// Warn logs a warning message with key-value pairs.
func Warn(msg string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Warnw(msg, args...)
}

// Info logs an informational message with key-value pairs.
func Info(msg string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Infow(msg, args...)
}

// Debug logs a debug message with key-value pairs.
func Debug(msg string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Debugw(msg, args...)
}
