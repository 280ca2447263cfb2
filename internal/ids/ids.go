// Package ids hands out identifiers for drawer instances and their hit regions.
// Generators are injected rather than shared so two drawers (or two tests) never
// observe each other's counters.
package ids

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Generator produces unique identifiers.
type Generator interface {
	NewID() string
}

// UUID generates random UUIDv4 strings.
type UUID struct{}

// NewID returns a new UUIDv4.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence generates prefix-1, prefix-2, ... and is deterministic per instance.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequence returns a counter scoped to the caller.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewID returns the next identifier in the sequence.
func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.prefix + "-" + strconv.Itoa(s.next)
}
