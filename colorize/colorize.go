// Package colorize implements the color mapper of spec §4.6: translating
// a classify.PointClass into an RGB raster.Color via a period-indexed
// palette.
package colorize

import (
	"github.com/whalelogic/mandelbrot-orbits/classify"
	"github.com/whalelogic/mandelbrot-orbits/palette"
	"github.com/whalelogic/mandelbrot-orbits/raster"
)

// fastEscapeThreshold is the escape-time cutoff at or below which escaped pixels
// render as a white ring rather than black.
const fastEscapeThreshold = 100

// Color maps a PointClass to its pixel color:
//   - Escaped{escape_time}: black if escape_time > 100, else white.
//   - Periodic{period=0} and Undetermined: black (the distinction is lost
//     at color time, per spec §4.6's note).
//   - Periodic{period>=1}: the palette color at index period-1.
func Color(pc classify.PointClass, pal *palette.Palette) raster.Color {
	switch pc.Kind {
	case classify.Escaped:
		if pc.EscapeTime > fastEscapeThreshold {
			return raster.Color{}
		}
		return raster.Color{R: 255, G: 255, B: 255}
	case classify.Periodic:
		if pc.Period == 0 {
			return raster.Color{}
		}
		return pal.At(int(pc.Period) - 1)
	default: // classify.Undetermined
		return raster.Color{}
	}
}
