package imaging

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/geoframe-mcp/internal/geoframe"
)

// RGBAColor holds 8-bit color components; A is opacity (255 = opaque).
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLColor is hue in degrees [0, 360) with saturation and lightness in
// percent [0, 100].
type HSLColor struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// ColorResult is one pixel's color in several notations. Hex omits alpha.
type ColorResult struct {
	Hex  string    `json:"hex"`
	RGBA RGBAColor `json:"rgba"`
	HSL  HSLColor  `json:"hsl"`
}

// SampleColor returns the color of the pixel at (x, y), relative to the
// image's top-left corner.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	px, py := bounds.Min.X+x, bounds.Min.Y+y
	if x < 0 || y < 0 || px >= bounds.Max.X || py >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, bounds.Dx(), bounds.Dy())
	}

	r, g, b, a := img.At(px, py).RGBA()
	r8, g8, b8, a8 := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)

	// Hex and HSL ignore alpha.
	c := colorful.Color{R: float64(r8) / 255, G: float64(g8) / 255, B: float64(b8) / 255}
	h, s, l := c.Hsl()

	return &ColorResult{
		Hex:  strings.ToUpper(c.Hex()),
		RGBA: RGBAColor{R: r8, G: g8, B: b8, A: a8},
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}, nil
}

// GeoColorResult is a color sampled at a geographic point.
type GeoColorResult struct {
	Lat   float64     `json:"lat"`
	Lon   float64     `json:"lon"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// SampleColorGeo returns the color of the pixel of img that contains
// (lat, lon) under frame f.
func SampleColorGeo(img image.Image, f geoframe.Frame, lat, lon float64) (*GeoColorResult, error) {
	p, err := PixelAt(f, lat, lon)
	if err != nil {
		return nil, err
	}

	c, err := SampleColor(img, p.X, p.Y)
	if err != nil {
		return nil, fmt.Errorf("failed to sample (%v, %v): %w", lat, lon, err)
	}

	return &GeoColorResult{Lat: lat, Lon: lon, X: p.X, Y: p.Y, Color: *c}, nil
}
