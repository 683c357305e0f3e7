/*
Package flyweight provides a flyweight factory: a cache of shared instances
keyed by an identifier and a free-form parameter map, so logically
identical objects are constructed once and reused everywhere.

# Overview

A Factory maps (identifier, params) pairs to shared instances. Consumers
register a Producer per identifier; the first Acquire for a given pair runs
the producer and caches the result, and every later Acquire with value-equal
inputs returns the exact same instance. The cache never evicts on its own -
entries leave only through Evict or Clear.

The factory is built on two small composable pieces that are useful on
their own:

  - store: a generic thread-safe key/value store (the factory's cache)
  - params: a typed view over map[string]any (the construction context)

# Basic Usage

Register producers, then acquire shared instances:

	type Glyph struct {
	    Name  string
	    Color string
	}

	factory := flyweight.New[*Glyph]().
	    Register("arrow", func(ctx context.Context, id string, p params.Params) (*Glyph, error) {
	        return &Glyph{Name: id, Color: p.String("color", "black")}, nil
	    })

	red := params.New(map[string]any{"color": "red"})

	a, err := factory.Acquire(ctx, "arrow", red)
	b, err := factory.Acquire(ctx, "arrow", red)
	// a == b: same instance, producer ran once

Acquiring an identifier with no registered producer returns
*UnknownIdentifierError unless a Fallback producer is set.

# Cache Keys

Keys are derived deterministically from the identifier and a canonical
JSON encoding of the params. Map entry order never matters:

	factory.Acquire(ctx, "arrow", params.New(map[string]any{"a": 1, "b": 2}))
	factory.Acquire(ctx, "arrow", params.New(map[string]any{"b": 2, "a": 1}))
	// same key, same instance

# Error Handling

Producer errors propagate to the Acquire caller unwrapped and are never
cached: a failed construction leaves the key absent, so the next Acquire
with the same inputs runs the producer again.

# Concurrency

All methods are safe for concurrent use. Concurrent Acquire calls for the
same key are coalesced - the producer runs at most once per distinct key at
a time, and unrelated keys never serialize behind each other.

# Observability

Logging, OpenTelemetry metrics and tracing, and a synchronous observer
hook are all opt-in:

	factory := flyweight.New[*Glyph](
	    flyweight.WithLogger(slog.Default()),
	    flyweight.WithMetrics(true),
	    flyweight.WithTracing(true),
	)

# Warming

A factory can be pre-populated from a preset catalog loaded from YAML or
JSON:

	presets, err := flyweight.LoadCatalog("glyphs.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	if err := factory.Warm(ctx, presets); err != nil {
	    log.Fatal(err)
	}
*/
package flyweight
