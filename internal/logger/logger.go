// Package logger provides the leveled logger used by the CLI, the
// watcher, and the transcription adapter. The core pipeline packages
// stay log-free.
package logger

import (
	"context"
	"log"
	"os"
	"strings"
)

// Logger is the logging interface handed to components that observe
// external events. Context is accepted for call-site symmetry with
// blocking operations; the default implementation ignores it.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

type implLogger struct {
	logger *log.Logger
	level  string
}

// New creates a Logger writing to stderr at the given minimum level
// (debug, info, warn, error).
func New(level string) Logger {
	return &implLogger{
		logger: log.New(os.Stderr, "", log.LstdFlags),
		level:  strings.ToLower(level),
	}
}

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

func (l *implLogger) shouldLog(level string) bool {
	current, ok := levels[l.level]
	if !ok {
		current = 1
	}
	target, ok := levels[level]
	if !ok {
		return true
	}
	return target >= current
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.logger.Printf("[DEBUG] "+msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.logger.Printf("[INFO] "+msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.logger.Printf("[WARN] "+msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.logger.Printf("[ERROR] "+msg, args...)
	}
}

// Nop returns a Logger that discards everything, for tests.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...interface{}) {}
func (nopLogger) Info(context.Context, string, ...interface{})  {}
func (nopLogger) Warn(context.Context, string, ...interface{})  {}
func (nopLogger) Error(context.Context, string, ...interface{}) {}
