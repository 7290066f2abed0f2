// Package aa implements the anti-aliasing worker pool of spec §4.8: each
// dequeued pixel is re-sampled with jittered averaging, and a color change
// propagates a new disc-shaped halo of neighbors into the same queue.
package aa

import (
	"context"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/whalelogic/mandelbrot-orbits/aamask"
	"github.com/whalelogic/mandelbrot-orbits/classify"
	"github.com/whalelogic/mandelbrot-orbits/colorize"
	"github.com/whalelogic/mandelbrot-orbits/edge"
	"github.com/whalelogic/mandelbrot-orbits/palette"
	"github.com/whalelogic/mandelbrot-orbits/pixel"
	"github.com/whalelogic/mandelbrot-orbits/raster"
	"github.com/whalelogic/mandelbrot-orbits/tilequeue"
	"github.com/whalelogic/mandelbrot-orbits/viewport"
)

// Params bounds one AA run: how many jittered samples to average per pixel
// and how wide a halo a color change propagates.
type Params struct {
	Samples      int
	BorderRadius int
	BaseSeed     uint64
}

// resample draws params.Samples jittered classifications around (i, j) and
// averages their colors, per spec §4.8 steps 1-3.
func resample(i, j int, vp viewport.Viewport, cp classify.Params, pal *palette.Palette, params Params, rng *rand.Rand) raster.Color {
	center := vp.Coordinate(i, j)

	var rSum, gSum, bSum int
	for s := 0; s < params.Samples; s++ {
		jx := (rng.Float64()*2 - 1) * (vp.DX / 2)
		jy := (rng.Float64()*2 - 1) * (vp.DY / 2)
		c := center + complex(jx, jy)
		pc := classify.Classify(c, cp)
		col := colorize.Color(pc, pal)
		rSum += int(col.R)
		gSum += int(col.G)
		bSum += int(col.B)
	}
	n := params.Samples
	return raster.Color{
		R: clampByte(rSum / n),
		G: clampByte(gSum / n),
		B: clampByte(bSum / n),
	}
}

// clampByte clamps an accumulated/averaged channel value to [0, 255].
func clampByte(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// worker drains queue until the gatekeeper signals quiescence, re-sampling
// each dequeued pixel and propagating a halo around any pixel whose color
// changed, per spec §4.8 step 4.
func worker(rng *rand.Rand, vp viewport.Viewport, cp classify.Params, r *raster.Raster, pal *palette.Palette, mask *aamask.Mask, params Params, queue *tilequeue.Queue[pixel.Coord]) {
	for {
		px, ok := queue.Pop()
		if !ok {
			return
		}

		resampled := resample(px.I, px.J, vp, cp, pal, params, rng)
		current := r.Get(px.I, px.J)
		if resampled == current {
			continue
		}
		r.Set(px.I, px.J, resampled)
		edge.SeedDisc(px.I, px.J, params.BorderRadius, vp, mask, queue)
	}
}

// Run drains queue, which the caller has already filled (edge.Seed puts the
// boundary halos there), across nWorkers goroutines, each with its own thread-local
// math/rand/v2 generator derived from params.BaseSeed and the worker
// index, per spec §4.8's thread-local-RNG rationale.
func Run(ctx context.Context, vp viewport.Viewport, cp classify.Params, r *raster.Raster, pal *palette.Palette, mask *aamask.Mask, queue *tilequeue.Queue[pixel.Coord], params Params, nWorkers int) error {
	grp, _ := errgroup.WithContext(ctx)
	for w := 0; w < nWorkers; w++ {
		workerIdx := w
		grp.Go(func() error {
			rng := rand.New(rand.NewPCG(params.BaseSeed, uint64(workerIdx)))
			worker(rng, vp, cp, r, pal, mask, params, queue)
			return nil
		})
	}
	return grp.Wait()
}
