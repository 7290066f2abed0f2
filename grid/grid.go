// Package grid implements the memoization grid shared between the
// Mariani-Silver subdivider, the color pass, and the AA workers: a W*H
// array of single-assignment slots, filled at most once per pixel.
package grid

import (
	"fmt"
	"sync/atomic"

	"github.com/whalelogic/mandelbrot-orbits/classify"
)

// Grid is a lock-free, single-assignment 2D array of classify.PointClass
// slots, per spec §4.3: a slot, once filled, is never overwritten, and
// reads of an empty slot never block.
type Grid struct {
	width, height int
	cells         []atomic.Pointer[classify.PointClass]
}

// New allocates an empty width x height grid.
func New(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]atomic.Pointer[classify.PointClass], width*height),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) index(i, j int) int {
	return j*g.width + i
}

// TryGet acquire-loads the slot at (i, j). The second return value is
// false if the slot has not yet been published.
func (g *Grid) TryGet(i, j int) (classify.PointClass, bool) {
	p := g.cells[g.index(i, j)].Load()
	if p == nil {
		return classify.PointClass{}, false
	}
	return *p, true
}

// Put publishes value into the slot at (i, j) if it is empty. Racing
// writers filling the same slot with an equal value is tolerated
// (benign duplicate computation); a racing writer attempting to fill an
// already-full slot with a *different* value is a programmer error and
// panics rather than silently miscoloring the pixel.
func (g *Grid) Put(i, j int, value classify.PointClass) {
	cell := &g.cells[g.index(i, j)]
	v := value
	if cell.CompareAndSwap(nil, &v) {
		return
	}
	existing := cell.Load()
	if existing != nil && !existing.Equal(value) {
		panic(fmt.Sprintf("grid: slot (%d,%d) overwrite: have %+v, got %+v", i, j, *existing, value))
	}
}

// GetOrCompute returns the existing value at (i, j) if present; otherwise
// it computes, stores, and returns it. Under serial execution compute is
// called at most once per slot.
func (g *Grid) GetOrCompute(i, j int, compute func() classify.PointClass) classify.PointClass {
	if v, ok := g.TryGet(i, j); ok {
		return v
	}
	value := compute()
	g.Put(i, j, value)
	if v, ok := g.TryGet(i, j); ok {
		return v
	}
	return value
}
