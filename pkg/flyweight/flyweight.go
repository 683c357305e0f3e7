package flyweight

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/rsheldon/flyweight/pkg/flyweight/observability"
	"github.com/rsheldon/flyweight/pkg/flyweight/params"
	"github.com/rsheldon/flyweight/pkg/flyweight/store"
)

// Producer constructs a new value for an identifier and its params.
// It is the extension point consumers supply; the factory never constructs
// values itself. A producer reports construction failure by returning an
// error, which Acquire surfaces to the caller unmodified.
//
// The context is the caller's context passed through Acquire. Producers
// that block (I/O, subprocesses) should honor its cancellation.
type Producer[V any] func(ctx context.Context, identifier string, p params.Params) (V, error)

// Factory is a flyweight factory: it returns a shared instance for every
// value-equal (identifier, params) pair, constructing each distinct
// instance exactly once via a registered Producer.
//
// The factory holds no state beyond its cache and producer table. Entries
// never expire; they leave the cache only through Evict or Clear.
//
// All Factory methods are safe for concurrent use.
type Factory[V any] struct {
	cache     *store.Store[string, V]
	producers *store.Store[string, Producer[V]]
	fallback  Producer[V]
	group     singleflight.Group

	opts options
}

// New creates a factory with no registered producers.
//
//	factory := flyweight.New[*Glyph]().
//	    Register("arrow", newArrow).
//	    Register("box", newBox)
func New[V any](opts ...Option) *Factory[V] {
	f := &Factory[V]{
		cache:     store.New[string, V](),
		producers: store.New[string, Producer[V]](),
		opts:      defaultOptions(),
	}
	for _, opt := range opts {
		opt(&f.opts)
	}
	return f
}

// Register binds a producer to an identifier, replacing any previous
// binding. It returns the factory for chaining and panics on a nil
// producer, which is always a programming error.
func (f *Factory[V]) Register(identifier string, producer Producer[V]) *Factory[V] {
	if producer == nil {
		panic(ErrNilProducer)
	}
	f.producers.Set(identifier, producer)
	return f
}

// RegisterMany binds multiple producers at once.
func (f *Factory[V]) RegisterMany(producers map[string]Producer[V]) *Factory[V] {
	for identifier, producer := range producers {
		f.Register(identifier, producer)
	}
	return f
}

// Fallback sets the producer used for identifiers with no registered
// producer. Without a fallback, acquiring an unknown identifier returns
// *UnknownIdentifierError.
func (f *Factory[V]) Fallback(producer Producer[V]) *Factory[V] {
	f.fallback = producer
	return f
}

// Acquire returns the shared instance for (identifier, params),
// constructing it on first use.
//
// Equal (identifier, params) pairs always resolve to the same cache key
// and therefore the same instance. Under concurrent access, at most one
// producer call runs per distinct key; other callers for that key wait
// and receive the same result.
//
// Producer errors propagate to the caller unwrapped and are never cached:
// a later Acquire with the same inputs runs the producer again.
func (f *Factory[V]) Acquire(ctx context.Context, identifier string, p params.Params) (V, error) {
	var zero V
	if ctx == nil {
		return zero, ErrNilContext
	}

	key, err := Key(identifier, p)
	if err != nil {
		return zero, err
	}

	ctx, span := f.opts.spans.StartAcquireSpan(ctx, identifier)

	// Fast path: shared instance already cached.
	if v, ok := f.cache.Get(key); ok {
		f.opts.spans.AddSpanEvent(ctx, "flyweight.cache_hit")
		f.opts.spans.EndSpanWithError(span, nil)
		f.recordHit(ctx, identifier, key)
		return v, nil
	}

	start := time.Now()
	built, err, _ := f.group.Do(key, func() (any, error) {
		// Double-check inside the flight: another caller may have
		// populated the cache between the fast path and here.
		if v, ok := f.cache.Get(key); ok {
			return v, nil
		}
		return f.construct(ctx, identifier, key, p)
	})
	f.opts.spans.EndSpanWithError(span, err)
	if err != nil {
		f.recordError(ctx, identifier, key, time.Since(start), err)
		return zero, err
	}

	f.recordMiss(ctx, identifier, key, time.Since(start))
	return built.(V), nil
}

// construct resolves the producer for identifier, runs it, and caches the
// result. Called only from inside a singleflight flight, so it runs at
// most once per in-flight key.
func (f *Factory[V]) construct(ctx context.Context, identifier, key string, p params.Params) (any, error) {
	producer, ok := f.producers.Get(identifier)
	if !ok {
		if f.fallback == nil {
			return nil, &UnknownIdentifierError{Identifier: identifier}
		}
		producer = f.fallback
	}

	spanCtx, span := f.opts.spans.StartConstructSpan(ctx, identifier)
	v, err := producer(spanCtx, identifier, p)
	f.opts.spans.EndSpanWithError(span, err)
	if err != nil {
		// Failures are never cached; the key stays absent so the next
		// Acquire retries construction.
		return nil, err
	}

	f.cache.Set(key, v)
	return v, nil
}

// Cached reports whether a shared instance already exists for
// (identifier, params). It never triggers construction.
func (f *Factory[V]) Cached(identifier string, p params.Params) bool {
	key, err := Key(identifier, p)
	if err != nil {
		return false
	}
	return f.cache.Has(key)
}

// Evict drops the shared instance for (identifier, params) if one exists.
// The next Acquire with equal inputs constructs a fresh instance.
func (f *Factory[V]) Evict(identifier string, p params.Params) {
	key, err := Key(identifier, p)
	if err != nil {
		return
	}
	f.cache.Remove(key)
	observability.LogEvict(f.opts.logger, identifier, key)
}

// Clear drops every cached instance. Registered producers are unaffected.
func (f *Factory[V]) Clear() {
	evicted := f.cache.Len()
	f.cache.Clear()
	observability.LogClear(f.opts.logger, evicted)
}

// Len returns the number of cached instances.
func (f *Factory[V]) Len() int {
	return f.cache.Len()
}

// Identifiers returns the identifiers with a registered producer.
// The order is not guaranteed.
func (f *Factory[V]) Identifiers() []string {
	return f.producers.Keys()
}

func (f *Factory[V]) recordHit(ctx context.Context, identifier, key string) {
	observability.LogAcquireHit(f.opts.logger, identifier, key)
	f.opts.metrics.RecordAcquire(ctx, identifier, true, 0)
	f.notify(EventHit, identifier, key)
}

func (f *Factory[V]) recordMiss(ctx context.Context, identifier, key string, d time.Duration) {
	observability.LogAcquireMiss(f.opts.logger, identifier, key, float64(d.Milliseconds()))
	f.opts.metrics.RecordAcquire(ctx, identifier, false, d)
	f.opts.metrics.RecordCacheSize(ctx, int64(f.cache.Len()))
	f.notify(EventConstruct, identifier, key)
}

func (f *Factory[V]) recordError(ctx context.Context, identifier, key string, d time.Duration, err error) {
	observability.LogConstructError(f.opts.logger, identifier, err)
	f.opts.metrics.RecordConstructError(ctx, identifier, d)
	f.notify(EventError, identifier, key)
}
