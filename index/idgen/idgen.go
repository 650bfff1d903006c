/*
Package idgen generates process-wide unique identities for tensor indices.

The only contract of a generator is uniqueness: every call returns a value
never returned before by the same generator during the lifetime of the
process, and never returns 0 (which is reserved for default-constructed
indices). No ordering between IDs is guaranteed to clients.

The default generator starts at a random base, drawn once per process from a
random UUID, and counts upwards from there. Thus IDs of indices from different
processes (e.g., read back from files) are unlikely to collide. Tests may
replace the default with a seeded generator to get deterministic IDs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package idgen

import (
	"encoding/binary"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tnet.index'.
func tracer() tracing.Trace {
	return tracing.Select("tnet.index")
}

// ID is the identity of a tensor index. 0 means "no identity".
type ID uint64

// Generator produces unique identities.
type Generator interface {
	Generate() ID
}

// --- Unique ID counter ------------------------------------------------------

// Counter is a counter type. It is safe for concurrent use.
type Counter struct {
	counter uint64
}

// NewCounter creates a counter whose first emitted ID is seed+1 (skipping 0).
func NewCounter(seed uint64) *Counter {
	return &Counter{counter: seed}
}

// NewRandomCounter creates a counter starting at a random base.
func NewRandomCounter() *Counter {
	u := uuid.New()
	base := binary.BigEndian.Uint64(u[0:8]) ^ binary.BigEndian.Uint64(u[8:16])
	tracer().Debugf("new ID counter with random base %x", base)
	return NewCounter(base)
}

// Generate fetches a new unique id from this counter.
func (c *Counter) Generate() ID {
	for {
		val := atomic.LoadUint64(&c.counter)
		next := val + 1
		if next == 0 { // wrapped around, 0 is reserved
			next = 1
		}
		if atomic.CompareAndSwapUint64(&c.counter, val, next) {
			return ID(next)
		}
	}
}

var _ Generator = (*Counter)(nil)

// --- Process-wide default ---------------------------------------------------

var (
	defaultMutex sync.RWMutex
	defaultGen   Generator
	initOnce     sync.Once
)

// Default returns the process-wide generator. It is initialized with a random
// counter on first use, unless SetDefault has been called before.
func Default() Generator {
	initOnce.Do(func() {
		defaultMutex.Lock()
		defer defaultMutex.Unlock()
		if defaultGen == nil {
			defaultGen = NewRandomCounter()
		}
	})
	defaultMutex.RLock()
	defer defaultMutex.RUnlock()
	return defaultGen
}

// SetDefault replaces the process-wide generator and returns the previous one
// (which may be nil). Passing nil restores a fresh random counter.
//
// Replacing the generator while indices are being created concurrently is
// safe, but IDs are guaranteed to be unique only per generator.
func SetDefault(g Generator) Generator {
	initOnce.Do(func() {}) // new default wins over lazy initialization
	if g == nil {
		g = NewRandomCounter()
	}
	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	prev := defaultGen
	defaultGen = g
	return prev
}

// Next returns a new ID from the process-wide generator.
func Next() ID {
	return Default().Generate()
}
