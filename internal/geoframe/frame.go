package geoframe

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Frame geo-references a width x height pixel image.
//
// The zero Frame has a zero scale and is not usable; build frames with New or
// NewCentered.
type Frame struct {
	startLat float64
	startLon float64
	width    int
	height   int
	scale    float64
}

// New creates a frame whose pixel (0,0) sits at (lat, lon).
//
// Parameters:
//   - lat, lon: Geographic position of pixel (0,0). Any real value is
//     accepted and wrapped into the canonical range.
//   - width, height: Image size in pixels. Not validated.
//   - scale: Degrees per pixel on both axes ("zoom level"). Must be non-zero.
//
// Returns a *ConfigError when scale is zero.
func New(lat, lon float64, width, height int, scale float64) (Frame, error) {
	if scale == 0 {
		return Frame{}, &ConfigError{Scale: scale}
	}

	return Frame{
		startLat: NormalizeLat(lat),
		startLon: NormalizeLon(lon),
		width:    width,
		height:   height,
		scale:    scale,
	}, nil
}

// NewCentered creates a frame whose visual center sits at (lat, lon).
//
// The anchor is moved back by half the frame's extent on each axis,
// (width/2)*scale degrees of latitude and (height/2)*scale degrees of
// longitude, before wrapping. Odd dimensions center on a half pixel.
//
// Returns a *ConfigError when scale is zero.
func NewCentered(lat, lon float64, width, height int, scale float64) (Frame, error) {
	if scale == 0 {
		return Frame{}, &ConfigError{Scale: scale}
	}

	halfLat := (float64(width) / 2) * scale
	halfLon := (float64(height) / 2) * scale

	return Frame{
		startLat: EuclidMod((lat+latSpan/2)-halfLat, latSpan) - latSpan/2,
		startLon: EuclidMod((lon+lonSpan/2)-halfLon, lonSpan) - lonSpan/2,
		width:    width,
		height:   height,
		scale:    scale,
	}, nil
}

// StartLat returns the latitude of pixel (0,0), in [-90, 90).
func (f Frame) StartLat() float64 { return f.startLat }

// StartLon returns the longitude of pixel (0,0), in [-180, 180).
func (f Frame) StartLon() float64 { return f.startLon }

// Width returns the pixel width of the frame.
func (f Frame) Width() int { return f.width }

// Height returns the pixel height of the frame.
func (f Frame) Height() int { return f.height }

// Scale returns the degrees represented by one pixel step.
func (f Frame) Scale() float64 { return f.scale }

// ToGeographic converts a pixel offset to a canonical (lat, lon).
//
// x and y may be fractional. They must lie in [0, Width] and [0, Height]
// respectively; the width axis is checked first. Pixel x maps to latitude and
// pixel y to longitude.
func (f Frame) ToGeographic(x, y float64) (lat, lon float64, err error) {
	if err := f.checkRange(x, y); err != nil {
		return 0, 0, err
	}

	lat = NormalizeLat(f.startLat + x*f.scale)
	lon = NormalizeLon(f.startLon + y*f.scale)
	return lat, lon, nil
}

// ToPixel converts a geographic coordinate to a pixel offset.
//
// lat and lon need not be canonical. The distance from the frame's anchor is
// taken modulo the full span of each range (180 and 360 degrees), so a point
// just "behind" the anchor maps near the far edge rather than to a negative
// offset. The computed offset is range-checked like ToGeographic.
func (f Frame) ToPixel(lat, lon float64) (x, y float64, err error) {
	distanceLat := EuclidMod(lat-f.startLat, latSpan)
	distanceLon := EuclidMod(lon-f.startLon, lonSpan)

	x = distanceLat / f.scale
	y = distanceLon / f.scale

	if err := f.checkRange(x, y); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// Point is ToGeographic returning an orb.Point ([lon, lat]).
func (f Frame) Point(x, y float64) (orb.Point, error) {
	lat, lon, err := f.ToGeographic(x, y)
	if err != nil {
		return orb.Point{}, err
	}
	return orb.Point{lon, lat}, nil
}

// PixelOf is ToPixel taking an orb.Point ([lon, lat]).
func (f Frame) PixelOf(p orb.Point) (x, y float64, err error) {
	return f.ToPixel(p.Lat(), p.Lon())
}

// Center returns the geographic position of the frame's visual center. Passing
// it back to NewCentered with the same size and scale rebuilds f, up to
// rounding.
func (f Frame) Center() (lat, lon float64) {
	halfLat := (float64(f.width) / 2) * f.scale
	halfLon := (float64(f.height) / 2) * f.scale

	lat = EuclidMod((f.startLat+latSpan/2)+halfLat, latSpan) - latSpan/2
	lon = EuclidMod((f.startLon+lonSpan/2)+halfLon, lonSpan) - lonSpan/2
	return lat, lon
}

// Bound returns the geographic box covered by the frame without wrapping.
// Max may leave the canonical range when the frame crosses a pole or the
// antimeridian; callers that need canonical corners should use ToGeographic.
func (f Frame) Bound() orb.Bound {
	a := orb.Point{f.startLon, f.startLat}
	b := orb.Point{
		f.startLon + float64(f.height)*f.scale,
		f.startLat + float64(f.width)*f.scale,
	}
	return orb.Bound{Min: a, Max: a}.Extend(b)
}

func (f Frame) String() string {
	return fmt.Sprintf("Frame{start=(%v, %v) size=%dx%d scale=%v}",
		f.startLat, f.startLon, f.width, f.height, f.scale)
}

// checkRange rejects offsets outside the closed pixel box. NaN fails both
// comparisons and is rejected too.
func (f Frame) checkRange(x, y float64) error {
	if !(x >= 0 && x <= float64(f.width)) {
		return &RangeError{Axis: AxisWidth, Bound: f.width, Value: x}
	}
	if !(y >= 0 && y <= float64(f.height)) {
		return &RangeError{Axis: AxisHeight, Bound: f.height, Value: y}
	}
	return nil
}
