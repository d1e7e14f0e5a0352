// Package server implements the MCP (Model Context Protocol) server for
// geographic coordinate frames.
//
// This package provides a JSON-RPC 2.0 server that exposes geoframe
// conversions, and a few helpers for geo-referenced map images, to
// MCP-compatible clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Frame Operations:
//   - geoframe_create: Build a frame and describe it
//   - geoframe_to_geographic: Pixel offset to latitude/longitude
//   - geoframe_to_pixel: Latitude/longitude to pixel offset
//   - geoframe_to_pixel_multi: Convert many points; all or nothing
//
// Map Image Operations:
//   - image_load: Load image and get metadata
//   - image_geoframe: Frame covering an image
//   - image_sample_color_geo: Color at a geographic point
//   - image_crop_geo: Extract a geographic box
//
// Frames are stateless: every call carries its own frame definition. An
// omitted "anchor" uses the configured default (GEOFRAME_DEFAULT_ANCHOR).
//
// # Error Handling
//
// Tool errors are returned as JSON-RPC error responses with:
//   - code: -32602 for malformed or missing arguments (including an unknown
//     tool name), -32000 when the operation itself fails, such as a zero
//     zoom level or a point outside the frame
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(config.Load())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
