package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/ironsheep/geoframe-mcp/internal/config"
	"github.com/ironsheep/geoframe-mcp/internal/geoframe"
)

func TestRun(t *testing.T) {
	unit := []string{"--lat", "0", "--lon", "0", "--width", "100", "--height", "100", "--scale", "1"}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"to geographic", append(unit, "--x", "10", "--y", "10"), "10, 10\n"},
		{"far corner", append(unit, "--x", "100", "--y", "100"), "-80, 100\n"},
		{"to pixel", append(unit, "--to-pixel", "--at-lat", "-80", "--at-lon", "100"), "100, 100\n"},
		{"centered", []string{"--lat", "50", "--lon", "50", "--width", "100", "--height", "100", "--scale", "1", "--centered", "--x", "0", "--y", "0"}, "0, 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(tt.args, &out, config.Default()); err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("got %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestRun_Defaults(t *testing.T) {
	var out bytes.Buffer
	if err := run(nil, &out, config.Default()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	parts := strings.Split(strings.TrimSpace(out.String()), ", ")
	if len(parts) != 2 {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRun_ConfiguredCenterAnchor(t *testing.T) {
	args := []string{"--lat", "50", "--lon", "50", "--width", "100", "--height", "100", "--scale", "1", "--x", "0", "--y", "0"}

	var out bytes.Buffer
	if err := run(args, &out, config.Config{DefaultAnchor: config.AnchorCenter}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out.String() != "0, 0\n" {
		t.Errorf("got %q, want %q", out.String(), "0, 0\n")
	}
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer

	err := run([]string{"--scale", "0"}, &out, config.Default())
	if !errors.Is(err, geoframe.ErrZeroScale) {
		t.Errorf("zero scale: got %v", err)
	}

	err = run([]string{"--x", "5000"}, &out, config.Default())
	if !errors.Is(err, geoframe.ErrOutOfRange) {
		t.Errorf("out of range: got %v", err)
	}

	if err := run([]string{"extra"}, &out, config.Default()); err == nil {
		t.Error("expected error for positional argument")
	}

	if err := run([]string{"--help"}, &out, config.Default()); !errors.Is(err, pflag.ErrHelp) {
		t.Errorf("help: got %v", err)
	}
}
