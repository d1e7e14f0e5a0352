package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/geoframe-mcp/internal/geoframe"
)

// FrameForImage builds the frame covering img: its width and height are the
// image's pixel dimensions. With centered set, (lat, lon) is the image's
// visual center; otherwise it is the top-left pixel.
func FrameForImage(img image.Image, lat, lon, scale float64, centered bool) (geoframe.Frame, error) {
	bounds := img.Bounds()
	if centered {
		return geoframe.NewCentered(lat, lon, bounds.Dx(), bounds.Dy(), scale)
	}
	return geoframe.New(lat, lon, bounds.Dx(), bounds.Dy(), scale)
}

// PixelAt returns the 0-based pixel containing (lat, lon).
//
// The fractional offset from the frame is floored; an offset that lands
// exactly on the far edge selects the last column or row.
func PixelAt(f geoframe.Frame, lat, lon float64) (image.Point, error) {
	x, y, err := f.ToPixel(lat, lon)
	if err != nil {
		return image.Point{}, fmt.Errorf("locate (%v, %v): %w", lat, lon, err)
	}
	return image.Pt(pixelIndex(x, f.Width()), pixelIndex(y, f.Height())), nil
}

func pixelIndex(v float64, size int) int {
	i := int(math.Floor(v))
	if i >= size && size > 0 {
		i = size - 1
	}
	return i
}

// GeoRegion returns the pixel rectangle spanning the geographic box with
// corners (lat1, lon1) and (lat2, lon2). Corner order does not matter. The
// rectangle is widened outward to whole pixels.
func GeoRegion(f geoframe.Frame, lat1, lon1, lat2, lon2 float64) (Region, error) {
	ax, ay, err := f.ToPixel(lat1, lon1)
	if err != nil {
		return Region{}, fmt.Errorf("locate first corner: %w", err)
	}
	bx, by, err := f.ToPixel(lat2, lon2)
	if err != nil {
		return Region{}, fmt.Errorf("locate second corner: %w", err)
	}

	return Region{
		X1: int(math.Floor(math.Min(ax, bx))),
		Y1: int(math.Floor(math.Min(ay, by))),
		X2: int(math.Ceil(math.Max(ax, bx))),
		Y2: int(math.Ceil(math.Max(ay, by))),
	}, nil
}

// Region is a pixel rectangle; (X1, Y1) inclusive, (X2, Y2) exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}
