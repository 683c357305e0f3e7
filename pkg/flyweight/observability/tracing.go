package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the flyweight tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("flyweight")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartAcquireSpan starts a span for an acquire operation.
	// Returns the context with span and the span itself.
	StartAcquireSpan(ctx context.Context, identifier string) (context.Context, trace.Span)

	// StartConstructSpan starts a span for a producer call.
	// The construct span should be a child of the acquire span.
	StartConstructSpan(ctx context.Context, identifier string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartAcquireSpan starts a span for an acquire operation.
func (m *otelSpanManager) StartAcquireSpan(ctx context.Context, identifier string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "flyweight.acquire",
		trace.WithAttributes(
			attribute.String("flyweight.identifier", identifier),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartConstructSpan starts a span for a producer call.
func (m *otelSpanManager) StartConstructSpan(ctx context.Context, identifier string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "flyweight.construct."+identifier,
		trace.WithAttributes(
			attribute.String("flyweight.identifier", identifier),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
