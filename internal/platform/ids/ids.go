// Package ids provides identifier generators for new entities.
package ids

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// UUID generates random (version 4) UUID strings.
type UUID struct{}

// NewID returns a new UUID v4 string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence generates "prefix-1", "prefix-2", ... and is safe for concurrent
// use. It is meant for tests and fixtures where ids must be predictable.
type Sequence struct {
	prefix string
	n      atomic.Uint64
}

// NewSequence returns a Sequence whose ids start with prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewID returns the next id in the sequence.
func (s *Sequence) NewID() string {
	return s.prefix + "-" + strconv.FormatUint(s.n.Add(1), 10)
}
