/*
Copyright 2025 The hazardlab Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package logging provides the shared logr.Logger used across the library.
// The backend is zap; verbosity is controlled with the GROUNDMOTION_LOG_LEVEL
// environment variable ("debug" or "trace" raise the level above the default).
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels used with logger.V(). Level 0 is the default
// informational level.
const (
	DEBUG = 1
	TRACE = 2
)

var (
	mu  sync.RWMutex
	log = newDefaultLogger()
)

// Log returns the package-wide logger.
func Log() logr.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// SetLogger replaces the package-wide logger. Intended for callers that
// already carry their own logr setup (or logr.Discard() in tests).
func SetLogger(l logr.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

func newDefaultLogger() logr.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	switch strings.ToLower(os.Getenv("GROUNDMOTION_LOG_LEVEL")) {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-DEBUG))
	case "trace":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-TRACE))
	}

	zl, err := cfg.Build()
	if err != nil {
		// Fall back to a no-op logger rather than failing library init.
		return logr.Discard()
	}
	return zapr.NewLogger(zl)
}
