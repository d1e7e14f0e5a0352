package imaging

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"
)

func TestCrop(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := Crop(img, Region{X1: 0, Y1: 0, X2: 50, Y2: 50}, 1.0)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	if result.Width != 50 || result.Height != 50 {
		t.Errorf("dimensions: got %dx%d, want 50x50", result.Width, result.Height)
	}

	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}

	// The top-left quadrant is solid red.
	r, g, b, _ := decoded.At(25, 25).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("cropped pixel: got (%d,%d,%d), want (255,0,0)", r>>8, g>>8, b>>8)
	}
}

func TestCropScaled(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := Crop(img, Region{X1: 0, Y1: 0, X2: 50, Y2: 50}, 2.0)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	if result.Width != 100 || result.Height != 100 {
		t.Errorf("dimensions: got %dx%d, want 100x100", result.Width, result.Height)
	}
}

func TestCropInvalidRegion(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		name string
		r    Region
	}{
		{"negative origin", Region{X1: -1, Y1: 0, X2: 10, Y2: 10}},
		{"past right edge", Region{X1: 0, Y1: 0, X2: 101, Y2: 10}},
		{"past bottom edge", Region{X1: 0, Y1: 0, X2: 10, Y2: 101}},
		{"empty width", Region{X1: 10, Y1: 0, X2: 10, Y2: 10}},
		{"inverted height", Region{X1: 0, Y1: 20, X2: 10, Y2: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Crop(img, tt.r, 1.0); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestGeoRegion(t *testing.T) {
	img := createPatternImage(100, 100)
	f, err := FrameForImage(img, 0, 0, 1, false)
	if err != nil {
		t.Fatalf("FrameForImage failed: %v", err)
	}

	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   Region
	}{
		{"aligned", 0, 0, 50, 50, Region{0, 0, 50, 50}},
		{"corners swapped", 50, 50, 0, 0, Region{0, 0, 50, 50}},
		{"widened to whole pixels", 10.5, 10.5, 20.2, 20.2, Region{10, 10, 21, 21}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GeoRegion(f, tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if err != nil {
				t.Fatalf("GeoRegion failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCropGeo(t *testing.T) {
	img := createPatternImage(100, 100)
	f, err := FrameForImage(img, 0, 0, 1, false)
	if err != nil {
		t.Fatalf("FrameForImage failed: %v", err)
	}

	result, err := CropGeo(img, f, 50, 0, 100, 50, 1.0)
	if err != nil {
		t.Fatalf("CropGeo failed: %v", err)
	}
	if result.Region != (Region{50, 0, 100, 50}) {
		t.Errorf("region: got %+v", result.Region)
	}

	if _, err := CropGeo(img, f, 0, 0, 150, 50, 1.0); err == nil {
		t.Error("expected error for corner outside the frame")
	}
	if _, err := CropGeo(img, f, 10, 10, 10, 40, 1.0); err == nil {
		t.Error("expected error for zero-width box")
	}
}

func TestFrameForImageCentered(t *testing.T) {
	img := createPatternImage(100, 100)
	f, err := FrameForImage(img, 50, 50, 1, true)
	if err != nil {
		t.Fatalf("FrameForImage failed: %v", err)
	}
	if f.StartLat() != 0 || f.StartLon() != 0 {
		t.Errorf("start: got (%v,%v), want (0,0)", f.StartLat(), f.StartLon())
	}

	if _, err := FrameForImage(img, 0, 0, 0, false); err == nil {
		t.Error("expected error for zero scale")
	}
}
