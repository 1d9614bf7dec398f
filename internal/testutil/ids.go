package testutil

import (
	"fmt"
	"sync"
)

// CountingIDGenerator produces build IDs from a resettable counter.
//
// The same scenario run with a fresh CountingIDGenerator yields identical
// IDs, which keeps golden snapshots byte-stable.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type CountingIDGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int64
}

// NewCountingIDGenerator creates a generator whose first ID is prefix-0001.
// An empty prefix uses "build".
func NewCountingIDGenerator(prefix string) *CountingIDGenerator {
	if prefix == "" {
		prefix = "build"
	}
	return &CountingIDGenerator{prefix: prefix}
}

// Generate returns the next ID.
func (g *CountingIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%04d", g.prefix, g.n)
}

// Reset restarts the counter. After Reset, the next ID is prefix-0001.
func (g *CountingIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n = 0
}
