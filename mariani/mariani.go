// Package mariani implements the adaptive subdivider of spec §4.5: a
// recursive boundary-uniformity test that either fills a tile's interior
// in one shot or splits it into four overlapping children, run across a
// worker pool drained through a tilequeue.Queue.
package mariani

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/whalelogic/mandelbrot-orbits/classify"
	"github.com/whalelogic/mandelbrot-orbits/grid"
	"github.com/whalelogic/mandelbrot-orbits/tilequeue"
	"github.com/whalelogic/mandelbrot-orbits/viewport"
)

// minTileDim is the §4.5 step 1 threshold at or below which a tile is filled
// directly, point by point, rather than tested for boundary uniformity.
const minTileDim = 4

// classifyAt runs the pixel classifier at (i, j) without touching the grid;
// callers memoize via grid.GetOrCompute.
func classifyAt(vp viewport.Viewport, params classify.Params, i, j int) classify.PointClass {
	c := vp.Coordinate(i, j)
	return classify.Classify(c, params)
}

// getOrCompute memoizes classifyAt through g.
func getOrCompute(g *grid.Grid, vp viewport.Viewport, params classify.Params, i, j int) classify.PointClass {
	return g.GetOrCompute(i, j, func() classify.PointClass {
		return classifyAt(vp, params, i, j)
	})
}

// fillDirect classifies every pixel of the tile individually, per §4.5
// step 1, used for tiles too small to subdivide further.
func fillDirect(g *grid.Grid, vp viewport.Viewport, params classify.Params, t tilequeue.Tile) {
	for j := t.J; j < t.J+t.H; j++ {
		for i := t.I; i < t.I+t.W; i++ {
			getOrCompute(g, vp, params, i, j)
		}
	}
}

// boundaryUniform walks the tile's perimeter, classifying each pixel via
// get_or_compute, and reports whether every boundary pixel shares the same
// PointClass (per PointClass.Equal's strict, variant-aware rule).
//
// Per §4.5 step 3, a tile wider than half the image is forced non-uniform
// regardless of what its boundary says: the seed tile spans the whole
// image and must always subdivide, since the set's interior is not simply
// connected with its boundary.
func boundaryUniform(g *grid.Grid, vp viewport.Viewport, params classify.Params, t tilequeue.Tile) (classify.PointClass, bool) {
	var pd classify.PointClass
	first := true
	allSame := true

	visit := func(i, j int) {
		pc := getOrCompute(g, vp, params, i, j)
		if first {
			pd = pc
			first = false
			return
		}
		if !pc.Equal(pd) {
			allSame = false
		}
	}

	for i := t.I; i < t.I+t.W; i++ {
		visit(i, t.J)
		visit(i, t.J+t.H-1)
	}
	for j := t.J + 1; j < t.J+t.H-1; j++ {
		visit(t.I, j)
		visit(t.I+t.W-1, j)
	}

	if t.W > vp.Width/2 {
		allSame = false
	}

	return pd, allSame
}

// fillInterior fills every interior (non-boundary) pixel of the tile with
// pd via Put — never get_or_compute, per §4.5 step 4: the interior is
// known uniform from the boundary test and must not be recomputed.
func fillInterior(g *grid.Grid, t tilequeue.Tile, pd classify.PointClass) {
	for j := t.J; j < t.J+t.H; j++ {
		onEdgeRow := j == t.J || j == t.J+t.H-1
		for i := t.I; i < t.I+t.W; i++ {
			if onEdgeRow || i == t.I || i == t.I+t.W-1 {
				continue
			}
			g.Put(i, j, pd)
		}
	}
}

// split divides t into four overlapping sub-tiles sharing one-pixel
// borders, per §4.5 step 5's exact formula, so no pixel along a shared
// edge is missed by either child.
func split(t tilequeue.Tile) [4]tilequeue.Tile {
	hw, hh := t.W/2, t.H/2
	return [4]tilequeue.Tile{
		{I: t.I, J: t.J, W: hw, H: hh},
		{I: t.I + hw - 1, J: t.J, W: t.W - hw + 1, H: hh},
		{I: t.I, J: t.J + hh - 1, W: hw, H: t.H - hh + 1},
		{I: t.I + hw - 1, J: t.J + hh - 1, W: t.W - hw + 1, H: t.H - hh + 1},
	}
}

// processTile runs one step of the Mariani-Silver algorithm on t, pushing
// children to queue when t must be subdivided.
func processTile(g *grid.Grid, vp viewport.Viewport, params classify.Params, queue *tilequeue.Queue[tilequeue.Tile], t tilequeue.Tile) {
	if t.W <= minTileDim || t.H <= minTileDim {
		fillDirect(g, vp, params, t)
		return
	}

	pd, uniform := boundaryUniform(g, vp, params, t)
	if uniform {
		fillInterior(g, t, pd)
		return
	}

	for _, child := range split(t) {
		queue.Push(child)
	}
}

// Subdivide runs the Mariani-Silver adaptive subdivider across nWorkers
// goroutines, seeding the queue with the full-image tile and classifying
// into g. It returns when every tile has been consumed and the queue's
// gatekeeper has declared quiescence (§4.4), or the first worker error.
func Subdivide(ctx context.Context, g *grid.Grid, vp viewport.Viewport, params classify.Params, nWorkers int, inFlight int64) error {
	queue := tilequeue.NewQueue[tilequeue.Tile](nWorkers, inFlight)
	queue.Push(tilequeue.Tile{I: 0, J: 0, W: vp.Width, H: vp.Height})

	grp, _ := errgroup.WithContext(ctx)
	for w := 0; w < nWorkers; w++ {
		grp.Go(func() error {
			for {
				t, ok := queue.Pop()
				if !ok {
					return nil
				}
				processTile(g, vp, params, queue, t)
			}
		})
	}
	return grp.Wait()
}

// BruteForce classifies every pixel of the viewport directly, with no
// subdivision, per spec.md §6's `mode=brute_force` option. It exists as a
// ground-truth oracle: its output grid must equal Subdivide's for the same
// viewport and params (spec §8 scenario 2).
func BruteForce(g *grid.Grid, vp viewport.Viewport, params classify.Params) {
	for j := 0; j < vp.Height; j++ {
		for i := 0; i < vp.Width; i++ {
			getOrCompute(g, vp, params, i, j)
		}
	}
}
