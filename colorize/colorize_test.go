package colorize

import (
	"testing"

	"github.com/whalelogic/mandelbrot-orbits/classify"
	"github.com/whalelogic/mandelbrot-orbits/palette"
	"github.com/whalelogic/mandelbrot-orbits/raster"
)

func TestColorEscapedFast(t *testing.T) {
	pal := palette.Generate(8, 200, 330, 2)
	got := Color(classify.EscapedAt(50), pal)
	if got != (raster.Color{R: 255, G: 255, B: 255}) {
		t.Fatalf("fast escape = %+v, want white", got)
	}
}

func TestColorEscapedDeep(t *testing.T) {
	pal := palette.Generate(8, 200, 330, 2)
	got := Color(classify.EscapedAt(5000), pal)
	if got != (raster.Color{}) {
		t.Fatalf("deep escape = %+v, want black", got)
	}
}

func TestColorUndeterminedIsBlack(t *testing.T) {
	pal := palette.Generate(8, 200, 330, 2)
	got := Color(classify.UndeterminedClass, pal)
	if got != (raster.Color{}) {
		t.Fatalf("undetermined = %+v, want black", got)
	}
}

func TestColorPeriodicUsesPaletteIndex(t *testing.T) {
	pal := palette.Generate(8, 200, 330, 2)
	got := Color(classify.PeriodicAt(3), pal)
	want := pal.At(2)
	if got != want {
		t.Fatalf("period 3 = %+v, want palette[2] = %+v", got, want)
	}
}

func TestColorPeriodicZeroIsBlack(t *testing.T) {
	pal := palette.Generate(8, 200, 330, 2)
	got := Color(classify.PointClass{Kind: classify.Periodic, Period: 0}, pal)
	if got != (raster.Color{}) {
		t.Fatalf("period 0 = %+v, want black", got)
	}
}
