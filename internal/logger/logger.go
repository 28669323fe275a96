package logger

import (
	"sync"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Options configures the process-wide logger. File is optional; when set,
// log lines are also written to a size-rotated file.
type Options struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the singleton logger, initializing it with a stdout-only sink
// at the given level on first use.
func Get(level string) *Logger {
	return Init(Options{Level: level})
}

// Init is like Get but accepts the full option set. Only the first call
// (of Init or Get) takes effect.
func Init(opts Options) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(opts)
	})
	return globalLogger
}

// Nop returns a logger that discards everything. Intended for tests.
func Nop() *Logger {
	return newNopLogger()
}
