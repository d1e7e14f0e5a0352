package geoframe

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEuclidMod(t *testing.T) {
	tests := []struct {
		a, b float64
		want float64
	}{
		{10, 100, 10},
		{200, 100, 0},
		{-80, 100, 20},
		{0, 100, 0},
		{-100, 100, 0},
		{-0.5, 180, 179.5},
		{540, 360, 180},
		{-720.25, 360, 359.75},
		{10, -100, 10},
		{-80, -100, 20},
	}

	for _, tt := range tests {
		got := EuclidMod(tt.a, tt.b)
		assert.Equal(t, tt.want, got, "EuclidMod(%v, %v)", tt.a, tt.b)
	}
}

func TestEuclidMod_TinyNegativeStaysBelowModulus(t *testing.T) {
	got := EuclidMod(-1e-20, 100)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.Less(t, got, 100.0)
}

func TestEuclidMod_ZeroModulus(t *testing.T) {
	assert.True(t, math.IsNaN(EuclidMod(5, 0)))
}

func TestEuclidMod_RangeProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, b := range []float64{1, 100, 180, 360} {
		for i := 0; i < 2000; i++ {
			a := (rng.Float64() - 0.5) * 1e6
			got := EuclidMod(a, b)
			if got < 0 || got >= b {
				t.Fatalf("EuclidMod(%v, %v) = %v, outside [0, %v)", a, b, got, b)
			}
		}
	}
}

func TestNormalizeLat(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{1, 1},
		{45.5, 45.5},
		{-90, -90},
		{90, -90},
		{91, -89},
		{-91, 89},
		{180, 0},
		{190, 10},
		{-270, -90},
		{360.25, 0.25},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeLat(tt.in), "NormalizeLat(%v)", tt.in)
	}
}

func TestNormalizeLon(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{1, 1},
		{-180, -180},
		{180, -180},
		{181, -179},
		{-181, 179},
		{360, 0},
		{100, 100},
		{725.5, 5.5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeLon(tt.in), "NormalizeLon(%v)", tt.in)
	}
}

func TestNormalize_RangeProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		v := (rng.Float64() - 0.5) * 1e5

		lat := NormalizeLat(v)
		if lat < -90 || lat >= 90 {
			t.Fatalf("NormalizeLat(%v) = %v, outside [-90, 90)", v, lat)
		}

		lon := NormalizeLon(v)
		if lon < -180 || lon >= 180 {
			t.Fatalf("NormalizeLon(%v) = %v, outside [-180, 180)", v, lon)
		}
	}
}
