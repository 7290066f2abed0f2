// Package aamask implements the AA mask of spec §3/§4.7: a per-pixel
// boolean grid guarding the AA queue against duplicate enqueues, with a
// single mutex scoping "check + set + enqueue" as one atomic step.
package aamask

import "sync"

// Mask is a W*H boolean grid with set-once semantics: once a pixel is
// marked, it is never enqueued again.
type Mask struct {
	mu    sync.Mutex
	width int
	bits  []bool
}

// New allocates an all-false width x height mask.
func New(width, height int) *Mask {
	return &Mask{width: width, bits: make([]bool, width*height)}
}

// TrySeed marks (i, j) as seeded and invokes push iff it was not already
// marked, atomically under the mask's mutex. It reports whether it seeded.
func (m *Mask) TrySeed(i, j int, push func()) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := j*m.width + i
	if m.bits[idx] {
		return false
	}
	m.bits[idx] = true
	push()
	return true
}

// IsSet reports whether (i, j) has been seeded.
func (m *Mask) IsSet(i, j int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bits[j*m.width+i]
}
