package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// frameProperties describes the arguments that define a frame. Tools that
// also take a geographic point nest these under "frame".
func frameProperties() map[string]interface{} {
	return map[string]interface{}{
		"lat": map[string]interface{}{
			"type":        "number",
			"description": "Anchor latitude in degrees; any value, normalized into [-90, 90)",
		},
		"lon": map[string]interface{}{
			"type":        "number",
			"description": "Anchor longitude in degrees; any value, normalized into [-180, 180)",
		},
		"width": map[string]interface{}{
			"type":        "integer",
			"description": "Pixel extent along X, the latitude axis",
		},
		"height": map[string]interface{}{
			"type":        "integer",
			"description": "Pixel extent along Y, the longitude axis",
		},
		"scale": map[string]interface{}{
			"type":        "number",
			"description": "Zoom level: degrees per pixel. Must not be zero; may be negative",
		},
		"anchor": anchorProperty(),
	}
}

func anchorProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        []string{"corner", "center"},
		"description": "Whether lat/lon is the top-left pixel (corner) or the visual center (center). Defaults to the server's configured anchor",
	}
}

func frameSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Coordinate frame",
		"properties":  frameProperties(),
		"required":    []string{"lat", "lon", "width", "height", "scale"},
	}
}

// originSchema is a frame whose size comes from an image.
func originSchema() map[string]interface{} {
	props := frameProperties()
	delete(props, "width")
	delete(props, "height")
	return map[string]interface{}{
		"type":        "object",
		"description": "Geographic placement of the image; width and height are the image's pixel dimensions",
		"properties":  props,
		"required":    []string{"lat", "lon", "scale"},
	}
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Frame Operations
		{
			Name:        "geoframe_create",
			Description: "Build a coordinate frame and return its normalized start, center and geographic bounds. Fails when scale is zero.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": frameProperties(),
				"required":   []string{"lat", "lon", "width", "height", "scale"},
			},
		},
		{
			Name:        "geoframe_to_geographic",
			Description: "Convert a pixel offset within a frame to latitude/longitude. X moves along latitude and Y along longitude. Offsets must lie in [0, width] and [0, height].",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"frame": frameSchema(),
					"x": map[string]interface{}{
						"type":        "number",
						"description": "Offset along the latitude axis, fractional allowed",
					},
					"y": map[string]interface{}{
						"type":        "number",
						"description": "Offset along the longitude axis, fractional allowed",
					},
				},
				"required": []string{"frame", "x", "y"},
			},
		},
		{
			Name:        "geoframe_to_pixel",
			Description: "Convert latitude/longitude to a pixel offset within a frame. Fails when the point falls outside the frame.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"frame": frameSchema(),
					"lat": map[string]interface{}{
						"type":        "number",
						"description": "Latitude in degrees",
					},
					"lon": map[string]interface{}{
						"type":        "number",
						"description": "Longitude in degrees",
					},
				},
				"required": []string{"frame", "lat", "lon"},
			},
		},
		{
			Name:        "geoframe_to_pixel_multi",
			Description: "Convert several latitude/longitude points to pixel offsets in one call. If any point is outside the frame the whole call fails.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"frame": frameSchema(),
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"lat":   map[string]interface{}{"type": "number"},
								"lon":   map[string]interface{}{"type": "number"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"lat", "lon"},
						},
						"description": "Points to convert, in order",
					},
				},
				"required": []string{"frame", "points"},
			},
		},

		// Map Image Operations
		{
			Name:        "image_load",
			Description: "Load a map image and return its dimensions and format. The dimensions are the frame size used by the other image_ tools.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_geoframe",
			Description: "Place a map image on the globe and return the resulting frame: start, center and geographic bounds.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"origin": originSchema(),
				},
				"required": []string{"path", "origin"},
			},
		},
		{
			Name:        "image_sample_color_geo",
			Description: "Get the color of the map pixel that contains a latitude/longitude.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"origin": originSchema(),
					"lat": map[string]interface{}{
						"type":        "number",
						"description": "Latitude in degrees",
					},
					"lon": map[string]interface{}{
						"type":        "number",
						"description": "Longitude in degrees",
					},
				},
				"required": []string{"path", "origin", "lat", "lon"},
			},
		},
		{
			Name:        "image_crop_geo",
			Description: "Crop the map to the box between two latitude/longitude corners and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"origin": originSchema(),
					"lat1":   map[string]interface{}{"type": "number", "description": "First corner latitude"},
					"lon1":   map[string]interface{}{"type": "number", "description": "First corner longitude"},
					"lat2":   map[string]interface{}{"type": "number", "description": "Opposite corner latitude"},
					"lon2":   map[string]interface{}{"type": "number", "description": "Opposite corner longitude"},
					"resize": map[string]interface{}{
						"type":        "number",
						"description": "Optional output scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "origin", "lat1", "lon1", "lat2", "lon2"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
