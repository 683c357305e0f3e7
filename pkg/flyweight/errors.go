// Package flyweight provides a flyweight factory built on a keyed store.
package flyweight

import (
	"errors"
	"fmt"
)

// Sentinel errors for factory configuration and use.
var (
	// ErrNilContext indicates Acquire() was called with a nil context.
	ErrNilContext = errors.New("context cannot be nil")

	// ErrNilProducer indicates Register() was called with a nil producer.
	ErrNilProducer = errors.New("producer cannot be nil")

	// ErrUnknownIdentifier indicates no producer is registered for an identifier
	// and no fallback producer is configured. Use errors.Is to detect it;
	// the concrete error is *UnknownIdentifierError.
	ErrUnknownIdentifier = errors.New("no producer for identifier")
)

// UnknownIdentifierError reports an Acquire() call for an identifier with
// no registered producer. It wraps ErrUnknownIdentifier.
type UnknownIdentifierError struct {
	// Identifier is the unrecognized identifier.
	Identifier string
}

// Error implements the error interface.
func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("no producer for identifier %q", e.Identifier)
}

// Unwrap returns ErrUnknownIdentifier for errors.Is support.
func (e *UnknownIdentifierError) Unwrap() error {
	return ErrUnknownIdentifier
}

// KeyError reports a failure to derive a cache key, which happens only
// when the params contain values the canonical encoding cannot represent
// (channels, functions, cyclic structures).
type KeyError struct {
	// Identifier is the identifier whose key derivation failed.
	Identifier string
	// Err is the underlying encoding error.
	Err error
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	return fmt.Sprintf("derive key for %q: %v", e.Identifier, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *KeyError) Unwrap() error {
	return e.Err
}
