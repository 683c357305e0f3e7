package flyweight

import (
	"log/slog"

	"github.com/rsheldon/flyweight/pkg/flyweight/observability"
)

// options holds factory configuration shared by all value types.
type options struct {
	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	spans    observability.SpanManager
	observer Observer
}

// defaultOptions returns the default factory configuration:
// no logging, no metrics, no tracing, no observer.
func defaultOptions() options {
	return options{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// Option configures a factory at construction time.
type Option func(*options)

// WithLogger enables structured logging of cache hits, misses, and
// construction failures. A nil logger disables logging (the default).
//
// Example:
//
//	factory := flyweight.New[*Glyph](flyweight.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics for acquire operations.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before creating the factory:
//
//	otel.SetMeterProvider(yourProvider)
//	factory := flyweight.New[*Glyph](flyweight.WithMetrics(true))
func WithMetrics(enabled bool) Option {
	return func(o *options) {
		if enabled {
			o.metrics = observability.NewMetricsRecorder()
		} else {
			o.metrics = observability.NoopMetrics{}
		}
	}
}

// WithTracing enables OpenTelemetry spans around producer calls.
//
// The span manager uses the global OTel tracer provider.
func WithTracing(enabled bool) Option {
	return func(o *options) {
		if enabled {
			o.spans = observability.NewSpanManager()
		} else {
			o.spans = observability.NoopSpanManager{}
		}
	}
}

// WithObserver registers an observer notified of every cache hit, miss,
// and construction failure. A nil observer disables notification
// (the default).
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}
