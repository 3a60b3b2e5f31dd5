// Package logging provides categorized zap loggers for the planner.
// Logging is diagnostic only: nothing in internal/knowledge, internal/rpg,
// internal/search, internal/agent or internal/central changes behavior
// based on whether a category is enabled.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a logging subsystem.
type Category string

const (
	CategoryKnowledge Category = "knowledge"
	CategoryRPG       Category = "rpg"
	CategorySearch    Category = "search"
	CategoryAgent     Category = "agent"
	CategoryCentral   Category = "central"
	CategoryCLI       Category = "cli"
	CategoryScenario  Category = "scenario"
)

var (
	mu      sync.RWMutex
	base    *zap.Logger
	named   = make(map[Category]*zap.Logger)
	verbose bool
)

// Configure installs the base logger used by Get. Safe to call more than
// once (e.g. after parsing --verbose); existing named loggers are rebuilt
// lazily on next Get.
func Configure(v bool) error {
	mu.Lock()
	defer mu.Unlock()

	verbose = v
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	base = l
	named = make(map[Category]*zap.Logger)
	return nil
}

// Get returns the logger for category, building the base logger with
// production defaults on first use if Configure was never called.
func Get(category Category) *zap.Logger {
	mu.RLock()
	if l, ok := named[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := named[category]; ok {
		return l
	}
	if base == nil {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		base = l
	}
	l := base.Named(string(category))
	named[category] = l
	return l
}

// Sync flushes all constructed loggers. Call before process exit.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if base != nil {
		_ = base.Sync()
	}
	for _, l := range named {
		_ = l.Sync()
	}
}
