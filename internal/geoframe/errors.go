package geoframe

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroScale is matched by the *ConfigError returned when a frame is
	// built with a zero scale.
	ErrZeroScale = errors.New("zoom level must not be zero")

	// ErrOutOfRange is matched by every *RangeError.
	ErrOutOfRange = errors.New("pixel offset out of range")
)

// Axis identifies the pixel axis a RangeError refers to.
type Axis int

const (
	AxisWidth Axis = iota
	AxisHeight
)

func (a Axis) String() string {
	switch a {
	case AxisWidth:
		return "width"
	case AxisHeight:
		return "height"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ConfigError reports a frame that cannot be constructed.
type ConfigError struct {
	Scale float64
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid frame: zoom level %v must not be zero", e.Scale)
}

func (e *ConfigError) Unwrap() error { return ErrZeroScale }

// RangeError reports a pixel offset, given or computed, that falls outside
// [0, Bound] on one axis.
type RangeError struct {
	Axis  Axis
	Bound int
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("the maximum %s is %d, out of range: %v", e.Axis, e.Bound, e.Value)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }
