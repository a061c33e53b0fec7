// This file declares the options and sentinel errors of the restrict
// package.
package restrict

import (
	"context"
	"errors"
)

// Sentinel errors for local graph restriction.
var (
	// ErrNilMatrix indicates a nil adjacency matrix was supplied.
	ErrNilMatrix = errors.New("restrict: adjacency matrix is nil")

	// ErrNonSquare indicates the adjacency matrix is not p×p.
	ErrNonSquare = errors.New("restrict: adjacency matrix must be square")

	// ErrNegativeRadius indicates maxRadius < 0.
	ErrNegativeRadius = errors.New("restrict: radius must be non-negative")
)

// Option configures restriction behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing the labeling pass.
type Options struct {
	// Ctx allows cancellation and deadlines; polled once per frontier pop.
	Ctx context.Context

	// OnLabel is called when a node first receives a distance.
	// Targets fire at distance 0 before any expansion happens.
	OnLabel func(node, dist int)
}

// DefaultOptions returns Options with a background context and a no-op
// OnLabel hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnLabel: func(int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnLabel registers a callback fired on first distance assignment.
func WithOnLabel(fn func(node, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLabel = fn
		}
	}
}
