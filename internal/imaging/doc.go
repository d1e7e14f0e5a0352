// Package imaging reads geo-referenced map images for the MCP server.
//
// Images are plain raster files (PNG, JPEG, GIF, TIFF, BMP) whose pixel grid
// is described by a geoframe.Frame: the frame's width and height are the
// image's dimensions, and every geographic lookup goes through the frame's
// ToPixel/ToGeographic transforms. This package never reprojects or redraws
// the map; it only locates, samples and cuts existing pixels.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position, and the frame's latitude axis
//   - Y: vertical position, and the frame's longitude axis
//
// A frame addresses the closed range [0, width]; the far edge is folded onto
// the last pixel column (or row) when a fractional offset is turned into a
// pixel index.
//
// For regions, (x1,y1) is inclusive (top-left) and (x2,y2) is exclusive
// (bottom-right).
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. All other functions are stateless
// and may run concurrently on the same decoded image as long as nothing
// mutates it.
//
// # Error Handling
//
// Functions return errors for files that cannot be opened or decoded, for
// pixel coordinates outside the image, and for geographic points outside the
// image's frame (those wrap a *geoframe.RangeError).
package imaging
