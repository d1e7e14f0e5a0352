// Package geoframe maps pixel offsets inside a fixed-size map image to
// geographic coordinates and back.
//
// A Frame is anchored at the geographic position of pixel (0,0) and has a
// single scale (degrees per pixel) shared by both axes. Frames are immutable
// values: every method is a pure function of the frame and its arguments, so a
// Frame may be copied freely and shared between goroutines without locking.
//
// # Axis Convention
//
// Pixel X advances latitude and pixel Y advances longitude:
//
//	lat = NormalizeLat(startLat + x*scale)
//	lon = NormalizeLon(startLon + y*scale)
//
// This is the reverse of the usual x=longitude mapping and is intentional.
//
// # Canonical Ranges
//
// Latitudes are wrapped into [-90, 90) and longitudes into [-180, 180) using
// Euclidean modulo, so any real input has exactly one canonical value. The
// wrap is a flat, equirectangular-style wrap; no map projection is applied.
//
// # Bounds
//
// Pixel offsets are valid on the closed interval [0, Width] and [0, Height];
// the far edge is addressable. Values outside that interval yield a
// *RangeError. A zero scale is rejected at construction with a *ConfigError.
//
// Width and height are trusted as given. A frame whose span exceeds 180
// degrees of latitude or 360 degrees of longitude aliases distinct pixels onto
// the same coordinate, and ToPixel reports the smallest matching offset.
package geoframe
