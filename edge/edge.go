// Package edge implements the boundary detector and AA-queue seeder of
// spec §4.7: a single-threaded pre-pass over the grid that finds color
// discontinuities and enqueues a disc-shaped halo around each one.
package edge

import (
	"github.com/whalelogic/mandelbrot-orbits/aamask"
	"github.com/whalelogic/mandelbrot-orbits/classify"
	"github.com/whalelogic/mandelbrot-orbits/grid"
	"github.com/whalelogic/mandelbrot-orbits/pixel"
	"github.com/whalelogic/mandelbrot-orbits/tilequeue"
	"github.com/whalelogic/mandelbrot-orbits/viewport"
)

// isInterior resolves spec §9 Open Question 1: Undetermined is folded into
// "interior" for boundary detection, consistent with the color mapper
// already treating Undetermined as interior-colored (§4.6).
func isInterior(pc classify.PointClass) bool {
	return pc.Kind != classify.Escaped
}

// IsBoundary reports whether (i, j) is a boundary pixel: an interior pixel
// with an escaped 8-connected neighbor, or an escaped pixel with an
// interior 8-connected neighbor. Neighbors are clamped at the image edges.
func IsBoundary(i, j int, vp viewport.Viewport, g *grid.Grid) bool {
	center, ok := g.TryGet(i, j)
	if !ok {
		return false
	}
	centerInterior := isInterior(center)

	hasEscaped := false
	hasInterior := false
	for dj := -1; dj <= 1; dj++ {
		for di := -1; di <= 1; di++ {
			if di == 0 && dj == 0 {
				continue
			}
			ni, nj := i+di, j+dj
			if ni < 0 || ni >= vp.Width || nj < 0 || nj >= vp.Height {
				continue
			}
			nc, ok := g.TryGet(ni, nj)
			if !ok {
				continue
			}
			if isInterior(nc) {
				hasInterior = true
			} else {
				hasEscaped = true
			}
		}
	}

	return (centerInterior && hasEscaped) || (!centerInterior && hasInterior)
}

// ForEachDiscPixel visits every pixel (x, y) with (x-i)^2+(y-j)^2 <= radius^2,
// clamped to the viewport, per spec §4.7 step 4.
func ForEachDiscPixel(i, j, radius int, vp viewport.Viewport, fn func(x, y int)) {
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			x, y := i+dx, j+dy
			if x < 0 || x >= vp.Width || y < 0 || y >= vp.Height {
				continue
			}
			fn(x, y)
		}
	}
}

// SeedDisc marks and enqueues every not-yet-masked pixel in the disc of
// radius around (i, j). The mask's mutex makes "check + set + enqueue"
// atomic per pixel, per spec §4.7's closing requirement.
func SeedDisc(i, j, radius int, vp viewport.Viewport, mask *aamask.Mask, queue *tilequeue.Queue[pixel.Coord]) {
	ForEachDiscPixel(i, j, radius, vp, func(x, y int) {
		mask.TrySeed(x, y, func() { queue.Push(pixel.Coord{I: x, J: y}) })
	})
}

// Seed scans the full grid for boundary pixels and seeds a disc-shaped halo
// around each one into queue, per spec §4.7.
func Seed(vp viewport.Viewport, g *grid.Grid, mask *aamask.Mask, queue *tilequeue.Queue[pixel.Coord], radius int) {
	for j := 0; j < vp.Height; j++ {
		for i := 0; i < vp.Width; i++ {
			if IsBoundary(i, j, vp, g) {
				SeedDisc(i, j, radius, vp, mask, queue)
			}
		}
	}
}
