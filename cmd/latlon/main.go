// Command latlon converts between pixel offsets and geographic coordinates
// for a single frame.
//
//	latlon --lat 45.120052 --lon 125.639648 --x 10 --y 10
//	latlon --lat 0 --lon 0 --width 100 --height 100 --scale 1 --to-pixel --at-lat -80 --at-lon 100
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/ironsheep/geoframe-mcp/internal/config"
	"github.com/ironsheep/geoframe-mcp/internal/geoframe"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(0)
	log.SetPrefix("latlon: ")

	cfg := config.Load()
	if err := run(os.Args[1:], os.Stdout, cfg); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer, cfg config.Config) error {
	fs := pflag.NewFlagSet("latlon", pflag.ContinueOnError)
	fs.SetOutput(out)

	lat := fs.Float64("lat", 45.120052, "anchor latitude in degrees")
	lon := fs.Float64("lon", 125.639648, "anchor longitude in degrees")
	width := fs.Int("width", 1920, "frame width in pixels (latitude axis)")
	height := fs.Int("height", 1080, "frame height in pixels (longitude axis)")
	scale := fs.Float64("scale", 0.1, "zoom level in degrees per pixel")
	centered := fs.Bool("centered", cfg.DefaultAnchor == config.AnchorCenter, "treat --lat/--lon as the frame center")
	x := fs.Float64("x", 10, "pixel offset along the width axis")
	y := fs.Float64("y", 10, "pixel offset along the height axis")
	toPixel := fs.Bool("to-pixel", false, "convert --at-lat/--at-lon to a pixel offset instead")
	atLat := fs.Float64("at-lat", 0, "latitude to locate with --to-pixel")
	atLon := fs.Float64("at-lon", 0, "longitude to locate with --to-pixel")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	newFrame := geoframe.New
	if *centered {
		newFrame = geoframe.NewCentered
	}
	f, err := newFrame(*lat, *lon, *width, *height, *scale)
	if err != nil {
		return err
	}
	if cfg.Debug() {
		log.Printf("using %v", f)
	}

	if *toPixel {
		px, py, err := f.ToPixel(*atLat, *atLon)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s, %s\n", formatFloat(px), formatFloat(py))
		return err
	}

	gLat, gLon, err := f.ToGeographic(*x, *y)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s, %s\n", formatFloat(gLat), formatFloat(gLon))
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
