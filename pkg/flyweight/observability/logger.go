// Package observability provides production-grade observability features
// for flyweight factories: structured logging, metrics, and distributed
// tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds factory context to a logger.
// Returns a new logger with identifier and cache_key fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "arrow", key)
//	enriched.Info("doing work") // includes identifier, cache_key
func EnrichLogger(logger *slog.Logger, identifier, key string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("identifier", identifier),
		slog.String("cache_key", key),
	)
}

// LogAcquireHit logs an acquire that returned a cached instance.
func LogAcquireHit(logger *slog.Logger, identifier, key string) {
	if logger == nil {
		return
	}
	logger.Debug("acquire hit",
		slog.String("identifier", identifier),
		slog.String("cache_key", key),
	)
}

// LogAcquireMiss logs an acquire that constructed a new instance.
func LogAcquireMiss(logger *slog.Logger, identifier, key string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("acquire miss, instance constructed",
		slog.String("identifier", identifier),
		slog.String("cache_key", key),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogConstructError logs a failed construction.
func LogConstructError(logger *slog.Logger, identifier string, err error) {
	if logger == nil {
		return
	}
	logger.Error("construction failed",
		slog.String("identifier", identifier),
		slog.String("error", err.Error()),
	)
}

// LogEvict logs removal of a cached instance.
func LogEvict(logger *slog.Logger, identifier, key string) {
	if logger == nil {
		return
	}
	logger.Debug("instance evicted",
		slog.String("identifier", identifier),
		slog.String("cache_key", key),
	)
}

// LogClear logs removal of all cached instances.
func LogClear(logger *slog.Logger, evicted int) {
	if logger == nil {
		return
	}
	logger.Debug("cache cleared",
		slog.Int("evicted", evicted),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
