// This file declares the options, sentinel errors, and Result type of
// the neighborhood package.
package neighborhood

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/locograph/core"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("neighborhood: invalid option supplied")

// Option configures extraction behavior via functional arguments.
// An invalid Option (e.g. negative radius) is recorded internally and
// surfaced as ErrOptionViolation when Extract is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing extraction.
type Options struct {
	// Ctx allows cancellation and deadlines; polled once per dequeue.
	Ctx context.Context

	// Lookup resolves by-name anchors. Unused for index anchors.
	Lookup core.Lookup

	// MaxRadius bounds the traversal depth when >= 0; a negative value
	// means unbounded. Set it through WithMaxRadius, which rejects
	// negatives — the default is unbounded.
	MaxRadius int

	// KeepTargets retains target nodes and their edges instead of
	// dropping every edge that touches a target.
	KeepTargets bool

	// OnVisit is called when a node enters the result. If it returns an
	// error, extraction aborts and propagates that error.
	OnVisit func(node, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no name
// table, unbounded radius, target removal on, and a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxRadius: -1,
		OnVisit:   func(int, int) error { return nil },
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

// WithLookup supplies the name↔index table used to resolve by-name
// anchors.
func WithLookup(lk core.Lookup) Option {
	return func(o *Options) {
		if lk != nil {
			o.Lookup = lk
		}
	}
}

// WithMaxRadius bounds the traversal to r hops from the anchor.
//
//	r >= 0: include nodes at depth ≤ r
//	r < 0:  invalid option → ErrOptionViolation
func WithMaxRadius(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: MaxRadius cannot be negative (%d)", ErrOptionViolation, r)
			return
		}
		o.MaxRadius = r
	}
}

// WithKeepTargets disables target-edge removal, yielding the full
// radius-bounded neighborhood including target nodes.
func WithKeepTargets() Option {
	return func(o *Options) {
		o.KeepTargets = true
	}
}

// WithOnVisit registers a callback run as each node enters the result;
// returning an error from this callback stops the traversal.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a neighborhood extraction:
//   - Order: nodes in visit sequence, anchor first.
//   - Depth: map from node to its hop distance from the anchor.
type Result struct {
	Order []int
	Depth map[int]int
}

// Members returns the result as a set.
func (r *Result) Members() map[int]bool {
	m := make(map[int]bool, len(r.Order))
	for _, v := range r.Order {
		m[v] = true
	}
	return m
}

// Contains reports whether node v was reached.
func (r *Result) Contains(v int) bool {
	_, ok := r.Depth[v]
	return ok
}

// Len returns the number of reached nodes.
func (r *Result) Len() int { return len(r.Order) }
