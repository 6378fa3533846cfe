// Package id assigns record identifiers. IDs are millisecond Unix
// timestamps, which are unique enough for a single-user tracker; collisions
// within the same millisecond are avoided by bumping past the last value
// handed out.
package id

import (
	"sync"
	"time"
)

// Generator hands out monotonically increasing timestamp IDs.
type Generator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewGenerator creates a Generator using the given clock.
func NewGenerator(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// Next returns the next ID.
func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

var defaultGen = NewGenerator(time.Now)

// Next returns the next ID from the package-level generator.
func Next() int64 {
	return defaultGen.Next()
}
