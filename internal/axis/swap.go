// Package axis holds the axis-swap transform consumed by geometry code.
//
// The transform starts as identity and is composed with row-swap matrices,
// so it is always a permutation of the identity rows.
package axis

import (
	"fmt"
	"sync"
)

// Swap accumulates axis swaps. The zero value is not ready; use NewSwap.
type Swap struct {
	mu sync.Mutex
	m  Mat4
}

// NewSwap returns a Swap holding identity.
func NewSwap() *Swap {
	return &Swap{m: Identity()}
}

// SwapMatrix returns identity with rows a1 and a2 exchanged.
// It panics unless a1 and a2 are distinct values in {0, 1, 2}.
func SwapMatrix(a1, a2 int) Mat4 {
	if a1 < 0 || a1 > 2 || a2 < 0 || a2 > 2 {
		panic(fmt.Sprintf("axis: swap indices out of range: %d, %d", a1, a2))
	}
	if a1 == a2 {
		panic(fmt.Sprintf("axis: swap indices must differ: %d", a1))
	}
	m := Identity()
	m[a1], m[a2] = m[a2], m[a1]
	return m
}

// Set composes the swap of axes a1 and a2 into the transform:
// m = m * SwapMatrix(a1, a2). Same preconditions as SwapMatrix.
func (s *Swap) Set(a1, a2 int) {
	sw := SwapMatrix(a1, a2)
	s.mu.Lock()
	s.m = s.m.Mul(sw)
	s.mu.Unlock()
}

// Get returns a copy of the current transform.
func (s *Swap) Get() Mat4 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m
}

// Has reports whether the transform differs from identity.
func (s *Swap) Has() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.m.IsIdentity()
}

// Reset restores identity.
func (s *Swap) Reset() {
	s.mu.Lock()
	s.m = Identity()
	s.mu.Unlock()
}
