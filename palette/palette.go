// Package palette generates the period-indexed color table of spec
// §4.10: MAX_PERIOD hues sampled uniformly from a fixed range, converted
// through HSL to RGB, under a fixed seed for determinism.
package palette

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"

	"github.com/whalelogic/mandelbrot-orbits/raster"
)

// Palette holds one RGB color per detected period, colors[0] for period 1.
type Palette struct {
	Colors []raster.Color
}

// Generate seeds a PCG RNG with seed and draws maxPeriod hues uniformly
// from [hStart, hStop], each converted via HSL(hue, 0.7, 0.5) -> RGB.
func Generate(maxPeriod int, hStart, hStop float64, seed uint64) *Palette {
	rng := rand.New(rand.NewPCG(seed, seed))

	hues := make([]float64, maxPeriod)
	for i := range hues {
		hues[i] = hStart + rng.Float64()*(hStop-hStart)
	}

	colors := lo.Map(hues, func(h float64, _ int) raster.Color {
		r, g, b := colorful.Hsl(h, 0.7, 0.5).Clamped().RGB255()
		return raster.Color{R: r, G: g, B: b}
	})

	return &Palette{Colors: colors}
}

// At returns the color for period index i (0-based: period p is At(p-1)).
// Out-of-range indices return black rather than panicking, since a
// pathological MaxPeriod configuration must not crash the color pass.
func (p *Palette) At(i int) raster.Color {
	if i < 0 || i >= len(p.Colors) {
		return raster.Color{}
	}
	return p.Colors[i]
}

// Len reports the palette size (MAX_PERIOD).
func (p *Palette) Len() int {
	return len(p.Colors)
}
