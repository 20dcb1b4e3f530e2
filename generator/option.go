package generator

import (
	"crypto/rand"
	"io"
	"time"
)

type options struct {
	node   *[6]byte
	reader io.Reader
	now    func() time.Time
	seed   *[32]byte
}

// Option configures a Clock, Monotonic or Random generator
type Option func(o *options)

// WithNode sets the 48-bit node identifier used by Clock
func WithNode(node [6]byte) Option {
	return func(o *options) { o.node = &node }
}

// WithReader sets the random source; crypto/rand is the default
func WithReader(r io.Reader) Option {
	return func(o *options) { o.reader = r }
}

// WithNow overrides the wall clock, mostly for tests
func WithNow(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithSeed makes a Random generator deterministic
func WithSeed(seed [32]byte) Option {
	return func(o *options) { o.seed = &seed }
}

func newOptions(opts []Option) *options {
	o := &options{
		reader: rand.Reader,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
