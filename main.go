package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/pflag"

	"github.com/whalelogic/mandelbrot-orbits/render"
)

func main() {
	defaults := render.DefaultConfig()

	width := pflag.Int("width", defaults.Width, "output image width in pixels")
	height := pflag.Int("height", defaults.Height, "output image height in pixels")
	xmin := pflag.Float64("xmin", defaults.XMin, "left x coordinate")
	xmax := pflag.Float64("xmax", defaults.XMax, "right x coordinate")
	ymin := pflag.Float64("ymin", defaults.YMin, "bottom y coordinate")
	ymax := pflag.Float64("ymax", defaults.YMax, "top y coordinate")
	iterations := pflag.Int("iterations", defaults.Iterations, "escape-time iteration budget")
	maxPeriod := pflag.Int("max-period", defaults.MaxPeriod, "period-test ceiling")
	aaOn := pflag.Bool("aa", defaults.AA, "enable boundary anti-aliasing")
	aaSamples := pflag.Int("aa-samples", defaults.AASamples, "jittered samples per AA pixel")
	borderRadius := pflag.Int("border-radius", defaults.BorderRadius, "AA halo radius in pixels")
	threads := pflag.Int("threads", runtime.NumCPU(), "worker count per phase")
	mode := pflag.String("mode", string(defaults.Mode), "subdivision mode: mariani | brute_force")
	outputPath := pflag.String("output-path", defaults.OutputPath, "BMP output destination")
	pflag.Parse()

	cfg := defaults
	cfg.Width = *width
	cfg.Height = *height
	cfg.XMin, cfg.XMax, cfg.YMin, cfg.YMax = *xmin, *xmax, *ymin, *ymax
	cfg.Iterations = *iterations
	cfg.MaxPeriod = *maxPeriod
	cfg.AA = *aaOn
	cfg.AASamples = *aaSamples
	cfg.BorderRadius = *borderRadius
	cfg.Threads = *threads
	cfg.Mode = render.Mode(*mode)
	cfg.OutputPath = *outputPath

	start := time.Now()
	if err := render.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %s (%dx%d) in %s using mode %s\n", cfg.OutputPath, cfg.Width, cfg.Height, time.Since(start), cfg.Mode)
}
