package geoframe

import "math"

const (
	latSpan = 180.0
	lonSpan = 360.0
)

// EuclidMod returns a modulo b with the result in [0, |b|).
//
// Negative dividends wrap forward rather than toward zero:
//
//	EuclidMod(10, 100)  == 10
//	EuclidMod(200, 100) == 0
//	EuclidMod(-80, 100) == 20
//
// A b of zero yields NaN.
func EuclidMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r < 0 {
		r += math.Abs(b)
		// A tiny negative remainder can round up to |b| itself.
		if r >= math.Abs(b) {
			r = 0
		}
	}
	return r
}

// NormalizeLat wraps v into [-90, 90).
func NormalizeLat(v float64) float64 {
	return EuclidMod(v+latSpan/2, latSpan) - latSpan/2
}

// NormalizeLon wraps v into [-180, 180).
func NormalizeLon(v float64) float64 {
	return EuclidMod(v+lonSpan/2, lonSpan) - lonSpan/2
}
