// Package render implements the driver of spec §2/§6: it wires together
// viewport, palette, memoization grid, subdivider, color pass, edge
// detector, and AA pool into the single offline pipeline described by the
// data-flow table, then writes the resulting raster as a BMP file.
package render

import (
	"context"
	"fmt"
	"log"
	"runtime"

	"github.com/whalelogic/mandelbrot-orbits/aa"
	"github.com/whalelogic/mandelbrot-orbits/aamask"
	"github.com/whalelogic/mandelbrot-orbits/classify"
	"github.com/whalelogic/mandelbrot-orbits/colorize"
	"github.com/whalelogic/mandelbrot-orbits/edge"
	"github.com/whalelogic/mandelbrot-orbits/grid"
	"github.com/whalelogic/mandelbrot-orbits/mariani"
	"github.com/whalelogic/mandelbrot-orbits/palette"
	"github.com/whalelogic/mandelbrot-orbits/pixel"
	"github.com/whalelogic/mandelbrot-orbits/raster"
	"github.com/whalelogic/mandelbrot-orbits/tilequeue"
	"github.com/whalelogic/mandelbrot-orbits/viewport"
)

// Mode selects the subdivision strategy, spec §6's `mode` option.
type Mode string

const (
	ModeMariani    Mode = "mariani"
	ModeBruteForce Mode = "brute_force"
)

// Config carries every named option of spec §6's CLI table, defaults
// matching that table verbatim.
type Config struct {
	Width, Height          int
	XMin, XMax, YMin, YMax float64
	Iterations             int
	MaxPeriod              int
	AA                     bool
	AASamples              int
	BorderRadius           int
	Threads                int
	Mode                   Mode
	OutputPath             string
	PaletteHStart          float64
	PaletteHStop           float64
	PaletteSeed            uint64
}

// DefaultConfig returns the spec §6 defaults.
func DefaultConfig() Config {
	return Config{
		Width:         1920,
		Height:        1080,
		XMin:          -2.5,
		XMax:          1,
		YMin:          -1,
		YMax:          1,
		Iterations:    7000,
		MaxPeriod:     32,
		AA:            true,
		AASamples:     16,
		BorderRadius:  5,
		Threads:       runtime.NumCPU(),
		Mode:          ModeMariani,
		OutputPath:    "test.bmp",
		PaletteHStart: 200,
		PaletteHStop:  330,
		PaletteSeed:   2,
	}
}

// Run executes the full pipeline described by spec §2's data-flow table:
// palette init -> viewport setup -> subdivide (or brute-force) -> color
// pass -> edge detection + AA seeding -> AA resampling -> BMP write.
func Run(cfg Config) error {
	if cfg.Threads < 1 {
		return fmt.Errorf("render: threads must be >= 1, got %d", cfg.Threads)
	}

	pal := palette.Generate(cfg.MaxPeriod, cfg.PaletteHStart, cfg.PaletteHStop, cfg.PaletteSeed)
	vp := viewport.New(cfg.Width, cfg.Height, cfg.XMin, cfg.XMax, cfg.YMin, cfg.YMax)
	params := classify.Params{Iterations: cfg.Iterations, MaxPeriod: cfg.MaxPeriod}
	g := grid.New(cfg.Width, cfg.Height)

	ctx := context.Background()
	switch cfg.Mode {
	case ModeBruteForce:
		mariani.BruteForce(g, vp, params)
	case ModeMariani, "":
		if err := mariani.Subdivide(ctx, g, vp, params, cfg.Threads, int64(cfg.Threads*64)); err != nil {
			return fmt.Errorf("render: subdivide: %w", err)
		}
	default:
		return fmt.Errorf("render: unknown mode %q", cfg.Mode)
	}

	r := raster.New(cfg.Width, cfg.Height)
	for j := 0; j < cfg.Height; j++ {
		for i := 0; i < cfg.Width; i++ {
			pc, ok := g.TryGet(i, j)
			if !ok {
				log.Fatalf("render: grid slot (%d,%d) missing after subdivision", i, j)
			}
			r.Set(i, j, colorize.Color(pc, pal))
		}
	}

	if cfg.AA {
		mask := aamask.New(cfg.Width, cfg.Height)
		queue := tilequeue.NewQueue[pixel.Coord](cfg.Threads, 0)
		edge.Seed(vp, g, mask, queue, cfg.BorderRadius)

		aaParams := aa.Params{
			Samples:      cfg.AASamples,
			BorderRadius: cfg.BorderRadius,
			BaseSeed:     cfg.PaletteSeed,
		}
		if err := aa.Run(ctx, vp, params, r, pal, mask, queue, aaParams, cfg.Threads); err != nil {
			return fmt.Errorf("render: aa pass: %w", err)
		}
	}

	if err := r.Write(cfg.OutputPath); err != nil {
		return fmt.Errorf("render: write %s: %w", cfg.OutputPath, err)
	}
	return nil
}
