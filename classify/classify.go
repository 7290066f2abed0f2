// Package classify implements the per-pixel Mandelbrot classifier: the
// complex iteration kernel, the derivative-product period test, and the
// mapping from a complex coordinate to a PointClass.
package classify

import "math/cmplx"

// Kind discriminates the PointClass variants.
type Kind int

const (
	Escaped Kind = iota
	Periodic
	Undetermined
)

// PointClass is the tagged union of spec §3: a point either escaped at a
// given iteration, settled into a detected attracting cycle of a given
// period, or could not be classified within the configured budget.
//
// Equality (Equal) is deliberately stricter than visual equality: it is
// what Mariani-Silver uses to decide whether a tile's boundary is uniform,
// so it must distinguish every escape time and every period exactly.
type PointClass struct {
	Kind       Kind
	EscapeTime uint32
	Period     uint32
}

// EscapedAt builds an Escaped PointClass.
func EscapedAt(escapeTime uint32) PointClass {
	return PointClass{Kind: Escaped, EscapeTime: escapeTime}
}

// PeriodicAt builds a Periodic PointClass.
func PeriodicAt(period uint32) PointClass {
	return PointClass{Kind: Periodic, Period: period}
}

// UndeterminedClass is the singleton Undetermined PointClass value.
var UndeterminedClass = PointClass{Kind: Undetermined}

// Equal implements spec §3's tile-uniformity equality: same Kind, and for
// Escaped/Periodic the same scalar field; cross-Kind is always unequal.
func (p PointClass) Equal(o PointClass) bool {
	if p.Kind != o.Kind {
		return false
	}
	switch p.Kind {
	case Escaped:
		return p.EscapeTime == o.EscapeTime
	case Periodic:
		return p.Period == o.Period
	default:
		return true
	}
}

// Params bounds a classification run: the escape-time budget and the
// highest period the period test probes.
type Params struct {
	Iterations int
	MaxPeriod  int
}

// Iterate applies z <- z^2 + c exactly n times and returns the result.
func Iterate(z, c complex128, n int) complex128 {
	for i := 0; i < n; i++ {
		z = z*z + c
	}
	return z
}

// Multiplier computes Lambda = product_{k=0..n-1} phi'(z_k) where
// z_{k+1} = z_k^2 + c and phi'(z) = 2z, starting the orbit at z0.
func Multiplier(n int, z0, c complex128) complex128 {
	lambda := complex(1, 0)
	z := z0
	for k := 0; k < n; k++ {
		lambda *= 2 * z
		z = z*z + c
	}
	return lambda
}

// IsPeriod reports whether |multiplier(n, z_k, c)| < 1 holds across a
// window of max(n, maxPeriod) successive orbit points starting at z,
// per spec §4.1 — checking across a window resists false positives from
// points that are merely near convergence rather than attracting.
func IsPeriod(n int, z, c complex128, maxPeriod int) bool {
	window := n
	if maxPeriod > window {
		window = maxPeriod
	}
	zk := z
	for k := 0; k < window; k++ {
		if cmplx.Abs(Multiplier(n, zk, c)) >= 1 {
			return false
		}
		zk = zk*zk + c
	}
	return true
}

// Classify maps a complex coordinate to its PointClass: escape-time
// iteration first, then (for bounded points) a period probe from 1 up to
// params.MaxPeriod, per spec §4.2.
func Classify(c complex128, params Params) PointClass {
	z := complex(0, 0)
	n := 0
	for ; n < params.Iterations; n++ {
		if normSq(z) >= 4 {
			break
		}
		z = z*z + c
	}
	if normSq(z) > 4 {
		return EscapedAt(uint32(n))
	}
	for p := 1; p <= params.MaxPeriod; p++ {
		if IsPeriod(p, z, c, params.MaxPeriod) {
			return PeriodicAt(uint32(p))
		}
	}
	return UndeterminedClass
}

func normSq(z complex128) float64 {
	re, im := real(z), imag(z)
	return re*re + im*im
}
