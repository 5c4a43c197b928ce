package logger

import (
	"io"
	"log"
)

// Logger provides simplified logging with prefixes
type Logger struct {
	prefix string
	debug  bool
	out    *log.Logger
}

// New creates a new logger with a prefix writing to w
func New(w io.Writer, prefix string, debug bool) *Logger {
	return &Logger{
		prefix: "[" + prefix + "]",
		debug:  debug,
		out:    log.New(w, "", log.LstdFlags),
	}
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...interface{}) {
	l.out.Printf("%s INFO: %s %v", l.prefix, msg, args)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.out.Printf("%s WARN: %s %v", l.prefix, msg, args)
}

// Error logs an error message
func (l *Logger) Error(msg string, err error, args ...interface{}) {
	l.out.Printf("%s ERROR: %s - %v %v", l.prefix, msg, err, args)
}

// Debug logs a debug message when debug output is enabled
func (l *Logger) Debug(msg string, args ...interface{}) {
	if !l.debug {
		return
	}
	l.out.Printf("%s DEBUG: %s %v", l.prefix, msg, args)
}
