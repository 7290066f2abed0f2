// Package viewport maps the fixed image rectangle to the complex plane.
package viewport

// Viewport is the immutable, process-wide pixel-to-complex-plane mapping
// described in spec §3: image dimensions plus the complex-plane bounds, and
// the derived per-pixel deltas.
type Viewport struct {
	Width, Height  int
	XMin, XMax     float64
	YMin, YMax     float64
	DX, DY         float64
}

// New builds a Viewport and precomputes dx, dy.
func New(width, height int, xmin, xmax, ymin, ymax float64) Viewport {
	return Viewport{
		Width:  width,
		Height: height,
		XMin:   xmin,
		XMax:   xmax,
		YMin:   ymin,
		YMax:   ymax,
		DX:     (xmax - xmin) / float64(width),
		DY:     (ymax - ymin) / float64(height),
	}
}

// Coordinate maps pixel (i, j) to its complex-plane coordinate. The
// divide-then-multiply form here is deliberate: it must not be
// rewritten as xmin + float64(i)*dx, because that reassociation can make
// neighboring tiles compute slightly different values for a pixel they
// share on a border, defeating Mariani-Silver's boundary-equality test.
func (v Viewport) Coordinate(i, j int) complex128 {
	re := v.XMin + (float64(i)/float64(v.Width))*(v.XMax-v.XMin)
	im := v.YMin + (float64(j)/float64(v.Height))*(v.YMax-v.YMin)
	return complex(re, im)
}
