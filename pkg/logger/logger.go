// Package logger provides logging functionality for the IM application.
package logger

import (
	"fmt"
	"os"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.4.0 -source=logger.go -destination=mocklogger.gen.go -package=logger

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})

	// Warnf logs a formatted warning message.
	Warnf(format string, args ...interface{})
}

// noopLogger is a logger that discards regular messages but keeps warnings.
type noopLogger struct {
	mu sync.Mutex
}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Warnf writes warnings to stderr even in quiet mode.
func (n *noopLogger) Warnf(format string, args ...interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// defaultLogger is a thread-safe logger that writes to stdout.
type defaultLogger struct {
	mu sync.Mutex
}

// NewDefaultLogger creates a new default logger.
func NewDefaultLogger() Logger {
	return &defaultLogger{}
}

// Logf writes a formatted message to stdout with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Printf(format+"\n", args...)
}

// Warnf writes a formatted warning to stderr with thread safety.
func (d *defaultLogger) Warnf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
