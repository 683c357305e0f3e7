package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records flyweight factory metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordAcquire records an acquire operation. hit is true when a cached
	// instance was returned; duration is the construction time on a miss
	// (zero on a hit).
	RecordAcquire(ctx context.Context, identifier string, hit bool, duration time.Duration)

	// RecordConstructError records a failed construction.
	RecordConstructError(ctx context.Context, identifier string, duration time.Duration)

	// RecordCacheSize records the current number of cached instances.
	RecordCacheSize(ctx context.Context, size int64)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	acquires         metric.Int64Counter
	constructLatency metric.Float64Histogram
	constructErrors  metric.Int64Counter
	cacheSize        metric.Int64Gauge
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("flyweight")

	acquires, err := meter.Int64Counter("flyweight.acquires",
		metric.WithDescription("Number of acquire operations"),
	)
	if err != nil {
		return nil, err
	}

	constructLatency, err := meter.Float64Histogram("flyweight.construct.latency_ms",
		metric.WithDescription("Instance construction latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	constructErrors, err := meter.Int64Counter("flyweight.construct.errors",
		metric.WithDescription("Number of failed constructions"),
	)
	if err != nil {
		return nil, err
	}

	cacheSize, err := meter.Int64Gauge("flyweight.cache.size",
		metric.WithDescription("Number of cached instances"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		acquires:         acquires,
		constructLatency: constructLatency,
		constructErrors:  constructErrors,
		cacheSize:        cacheSize,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordAcquire records an acquire operation.
func (m *otelMetrics) RecordAcquire(ctx context.Context, identifier string, hit bool, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("identifier", identifier),
		attribute.Bool("hit", hit),
	}

	m.acquires.Add(ctx, 1, metric.WithAttributes(attrs...))
	if !hit {
		m.constructLatency.Record(ctx, float64(duration.Milliseconds()),
			metric.WithAttributes(attribute.String("identifier", identifier)))
	}
}

// RecordConstructError records a failed construction.
func (m *otelMetrics) RecordConstructError(ctx context.Context, identifier string, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("identifier", identifier),
	}
	m.constructErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.constructLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordCacheSize records the current cache size.
func (m *otelMetrics) RecordCacheSize(ctx context.Context, size int64) {
	m.cacheSize.Record(ctx, size)
}
