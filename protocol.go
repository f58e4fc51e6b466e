package natset

import (
	"context"
	"fmt"
	"iter"
	"time"
)

// Iterable is implemented by collections that enumerate their elements
// lazily in ascending order.
type Iterable interface {
	All() iter.Seq[int]
}

// Counter is implemented by collections that report their element count.
type Counter interface {
	Len() int
}

// Container is implemented by collections with a direct membership test.
type Container interface {
	Contains(n int) bool
}

// Collector builds a Set from a stream of items, one item at a time.
type Collector interface {
	// Add offers one item. An error leaves the collector unchanged.
	Add(n int) error

	// Build finalizes the collector and returns the accumulated set.
	Build() *Set
}

var (
	_ Iterable  = (*Set)(nil)
	_ Counter   = (*Set)(nil)
	_ Container = (*Set)(nil)
	_ Collector = (*Builder)(nil)
)

// Builder folds items into a Set.
//
// The accumulated set is valid after every Add; Build only hands it out
// and reports metrics. A Builder must not be used after Build.
type Builder struct {
	set     *Set
	opts    options
	items   int
	started time.Time
}

// NewBuilder returns an empty Builder configured by opts.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{
		set:     New(),
		opts:    applyOptions(opts),
		started: time.Now(),
	}
}

// Add inserts n, after the configured transform, into the set under
// construction. Negative values are rejected with *ErrNegativeElement.
func (b *Builder) Add(n int) error {
	if b.opts.transform != nil {
		n = b.opts.transform(n)
	}
	if err := Validate(n); err != nil {
		b.opts.metricsCollector.RecordAdd(err)
		b.opts.logger.LogRejected(context.Background(), n, err)
		return err
	}
	b.set.Insert(n)
	b.items++
	b.opts.metricsCollector.RecordAdd(nil)
	return nil
}

// Build returns the accumulated set.
func (b *Builder) Build() *Set {
	members := b.set.Len()
	duration := time.Since(b.started)
	b.opts.metricsCollector.RecordBuild(b.items, members, duration)
	b.opts.logger.LogBuild(context.Background(), b.items, members, b.set.Slices(), duration)
	return b.set
}

// Collect drives a Builder over seq.
//
// The first rejected item aborts collection; the returned error wraps it
// together with its position in seq.
func Collect(seq iter.Seq[int], opts ...Option) (*Set, error) {
	b := NewBuilder(opts...)
	pos := 0
	for n := range seq {
		if err := b.Add(n); err != nil {
			return nil, fmt.Errorf("collect item %d: %w", pos, err)
		}
		pos++
	}
	return b.Build(), nil
}
