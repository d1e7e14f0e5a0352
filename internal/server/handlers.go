package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/paulmach/orb"

	"github.com/ironsheep/geoframe-mcp/internal/config"
	"github.com/ironsheep/geoframe-mcp/internal/geoframe"
	"github.com/ironsheep/geoframe-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "geoframe_create", "image_crop_geo").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// errInvalidArguments marks tool errors caused by malformed or missing
// arguments rather than by the operation itself.
var errInvalidArguments = errors.New("invalid arguments")

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Bad arguments return -32602; any other tool failure returns -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.cfg.Debug() {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
		if errors.Is(err, errInvalidArguments) {
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Frame Operations
	case "geoframe_create":
		return s.handleFrameCreate(args)
	case "geoframe_to_geographic":
		return s.handleFrameToGeographic(args)
	case "geoframe_to_pixel":
		return s.handleFrameToPixel(args)
	case "geoframe_to_pixel_multi":
		return s.handleFrameToPixelMulti(args)

	// Map Image Operations
	case "image_load":
		return s.handleImageLoad(args)
	case "image_geoframe":
		return s.handleImageGeoframe(args)
	case "image_sample_color_geo":
		return s.handleImageSampleColorGeo(args)
	case "image_crop_geo":
		return s.handleImageCropGeo(args)

	default:
		return nil, fmt.Errorf("%w: unknown tool: %s", errInvalidArguments, name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
// An empty data string is omitted from the response.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments, tagging failures as invalid arguments.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidArguments, err)
	}
	return nil
}

// required dereferences a mandatory numeric argument.
func required(name string, v *float64) (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: missing required argument %q", errInvalidArguments, name)
	}
	return *v, nil
}

// === Frame construction ===

// frameArgs defines a frame. Width and Height are ignored for image tools,
// which take them from the image.
type frameArgs struct {
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Scale  *float64 `json:"scale"`
	Anchor string   `json:"anchor"`
}

type placement struct {
	lat, lon, scale float64
	centered        bool
}

// place validates the fields shared by every frame definition.
func (s *Server) place(a *frameArgs, prefix string) (placement, error) {
	if a == nil {
		return placement{}, fmt.Errorf("%w: missing required argument %q", errInvalidArguments, strings.TrimSuffix(prefix, "."))
	}

	var p placement
	var err error
	if p.lat, err = required(prefix+"lat", a.Lat); err != nil {
		return p, err
	}
	if p.lon, err = required(prefix+"lon", a.Lon); err != nil {
		return p, err
	}
	if p.scale, err = required(prefix+"scale", a.Scale); err != nil {
		return p, err
	}

	anchor := a.Anchor
	if anchor == "" {
		anchor = s.cfg.DefaultAnchor
	}
	switch anchor {
	case config.AnchorCorner:
	case config.AnchorCenter:
		p.centered = true
	default:
		return p, fmt.Errorf("%w: anchor %q must be %q or %q",
			errInvalidArguments, anchor, config.AnchorCorner, config.AnchorCenter)
	}
	return p, nil
}

// buildFrame turns frame arguments into a Frame.
func (s *Server) buildFrame(a *frameArgs, prefix string) (geoframe.Frame, error) {
	p, err := s.place(a, prefix)
	if err != nil {
		return geoframe.Frame{}, err
	}
	if p.centered {
		return geoframe.NewCentered(p.lat, p.lon, a.Width, a.Height, p.scale)
	}
	return geoframe.New(p.lat, p.lon, a.Width, a.Height, p.scale)
}

type latLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type boundResult struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// FrameResult describes a frame in tool output.
type FrameResult struct {
	StartLat float64     `json:"start_lat"`
	StartLon float64     `json:"start_lon"`
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Scale    float64     `json:"scale"`
	Center   latLon      `json:"center"`
	Bound    boundResult `json:"bound"`
}

func describeFrame(f geoframe.Frame) *FrameResult {
	lat, lon := f.Center()
	b := f.Bound()
	return &FrameResult{
		StartLat: f.StartLat(),
		StartLon: f.StartLon(),
		Width:    f.Width(),
		Height:   f.Height(),
		Scale:    f.Scale(),
		Center:   latLon{Lat: lat, Lon: lon},
		Bound: boundResult{
			MinLat: b.Min.Lat(),
			MinLon: b.Min.Lon(),
			MaxLat: b.Max.Lat(),
			MaxLon: b.Max.Lon(),
		},
	}
}

// === Frame Operation Handlers ===

func (s *Server) handleFrameCreate(args json.RawMessage) (interface{}, error) {
	var a frameArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	f, err := s.buildFrame(&a, "")
	if err != nil {
		return nil, err
	}
	if s.cfg.Debug() {
		log.Printf("Created %v", f)
	}
	return describeFrame(f), nil
}

type frameToGeographicArgs struct {
	Frame *frameArgs `json:"frame"`
	X     *float64   `json:"x"`
	Y     *float64   `json:"y"`
}

// PixelResult is a pixel offset within a frame.
type PixelResult struct {
	Label string  `json:"label,omitempty"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

func (s *Server) handleFrameToGeographic(args json.RawMessage) (interface{}, error) {
	var a frameToGeographicArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	f, err := s.buildFrame(a.Frame, "frame.")
	if err != nil {
		return nil, err
	}
	x, err := required("x", a.X)
	if err != nil {
		return nil, err
	}
	y, err := required("y", a.Y)
	if err != nil {
		return nil, err
	}

	lat, lon, err := f.ToGeographic(x, y)
	if err != nil {
		return nil, err
	}
	return &PixelResult{Lat: lat, Lon: lon, X: x, Y: y}, nil
}

type frameToPixelArgs struct {
	Frame *frameArgs `json:"frame"`
	Lat   *float64   `json:"lat"`
	Lon   *float64   `json:"lon"`
}

func (s *Server) handleFrameToPixel(args json.RawMessage) (interface{}, error) {
	var a frameToPixelArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	f, err := s.buildFrame(a.Frame, "frame.")
	if err != nil {
		return nil, err
	}
	lat, err := required("lat", a.Lat)
	if err != nil {
		return nil, err
	}
	lon, err := required("lon", a.Lon)
	if err != nil {
		return nil, err
	}

	x, y, err := f.ToPixel(lat, lon)
	if err != nil {
		return nil, err
	}
	return &PixelResult{Lat: lat, Lon: lon, X: x, Y: y}, nil
}

type geoPoint struct {
	Lat   *float64 `json:"lat"`
	Lon   *float64 `json:"lon"`
	Label string   `json:"label"`
}

type frameToPixelMultiArgs struct {
	Frame  *frameArgs `json:"frame"`
	Points []geoPoint `json:"points"`
}

// MultiPixelResult is the output of geoframe_to_pixel_multi.
type MultiPixelResult struct {
	Results []PixelResult `json:"results"`
	Count   int           `json:"count"`
}

func (s *Server) handleFrameToPixelMulti(args json.RawMessage) (interface{}, error) {
	var a frameToPixelMultiArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	f, err := s.buildFrame(a.Frame, "frame.")
	if err != nil {
		return nil, err
	}
	if len(a.Points) == 0 {
		return nil, fmt.Errorf("%w: points must not be empty", errInvalidArguments)
	}

	results := make([]PixelResult, 0, len(a.Points))
	for i, p := range a.Points {
		if p.Lat == nil || p.Lon == nil {
			return nil, fmt.Errorf("%w: point %d needs lat and lon", errInvalidArguments, i)
		}
		pt := orb.Point{*p.Lon, *p.Lat}
		x, y, err := f.PixelOf(pt)
		if err != nil {
			return nil, fmt.Errorf("point %d (%s): %w", i, p.Label, err)
		}
		results = append(results, PixelResult{
			Label: p.Label,
			Lat:   pt.Lat(),
			Lon:   pt.Lon(),
			X:     x,
			Y:     y,
		})
	}

	return &MultiPixelResult{Results: results, Count: len(results)}, nil
}

// === Map Image Operation Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("%w: missing required argument %q", errInvalidArguments, "path")
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type imageGeoArgs struct {
	Path   string     `json:"path"`
	Origin *frameArgs `json:"origin"`
}

// placedImage is a decoded map image with its frame.
type placedImage struct {
	img   image.Image
	frame geoframe.Frame
}

// imageFrame loads the image at a.Path and places it according to a.Origin.
func (s *Server) imageFrame(a imageGeoArgs) (*placedImage, error) {
	if a.Path == "" {
		return nil, fmt.Errorf("%w: missing required argument %q", errInvalidArguments, "path")
	}
	p, err := s.place(a.Origin, "origin.")
	if err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	f, err := imaging.FrameForImage(img, p.lat, p.lon, p.scale, p.centered)
	if err != nil {
		return nil, err
	}
	return &placedImage{img: img, frame: f}, nil
}

// ImageFrameResult is the output of image_geoframe.
type ImageFrameResult struct {
	Path string `json:"path"`
	*FrameResult
}

func (s *Server) handleImageGeoframe(args json.RawMessage) (interface{}, error) {
	var a imageGeoArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	r, err := s.imageFrame(a)
	if err != nil {
		return nil, err
	}
	return &ImageFrameResult{Path: a.Path, FrameResult: describeFrame(r.frame)}, nil
}

type imageSampleColorGeoArgs struct {
	imageGeoArgs
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

func (s *Server) handleImageSampleColorGeo(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorGeoArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	lat, err := required("lat", a.Lat)
	if err != nil {
		return nil, err
	}
	lon, err := required("lon", a.Lon)
	if err != nil {
		return nil, err
	}

	r, err := s.imageFrame(a.imageGeoArgs)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColorGeo(r.img, r.frame, lat, lon)
}

type imageCropGeoArgs struct {
	imageGeoArgs
	Lat1   *float64 `json:"lat1"`
	Lon1   *float64 `json:"lon1"`
	Lat2   *float64 `json:"lat2"`
	Lon2   *float64 `json:"lon2"`
	Resize float64  `json:"resize"`
}

func (s *Server) handleImageCropGeo(args json.RawMessage) (interface{}, error) {
	var a imageCropGeoArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Resize == 0 {
		a.Resize = 1.0
	}

	var corners [4]float64
	for i, c := range []struct {
		name string
		v    *float64
	}{{"lat1", a.Lat1}, {"lon1", a.Lon1}, {"lat2", a.Lat2}, {"lon2", a.Lon2}} {
		v, err := required(c.name, c.v)
		if err != nil {
			return nil, err
		}
		corners[i] = v
	}

	r, err := s.imageFrame(a.imageGeoArgs)
	if err != nil {
		return nil, err
	}
	return imaging.CropGeo(r.img, r.frame, corners[0], corners[1], corners[2], corners[3], a.Resize)
}
