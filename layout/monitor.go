// Package layout turns a compositor monitor listing into per-monitor crops of
// one canvas sized image.
package layout

import "fmt"

// Vector is used both as a position and as a size, in pixels.
type Vector struct {
	X uint16 `toml:"x"`
	Y uint16 `toml:"y"`
}

func (v Vector) String() string {
	return fmt.Sprintf("%dx%d", v.X, v.Y)
}

// Rotation in degrees, always one of 0, 90, 180 or 270
type Rotation uint16

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// Codes 4-7 are the flipped variants of 0-3. Flipping doesn't change which part
// of the canvas a monitor covers so it's ignored.
var transformRotations = [8]Rotation{
	Rotate0, Rotate90, Rotate180, Rotate270,
	Rotate0, Rotate90, Rotate180, Rotate270,
}

// RotationFromTransform maps a compositor transform code to a rotation.
// Unknown codes are treated as unrotated.
func RotationFromTransform(code int) Rotation {
	if code < 0 || code >= len(transformRotations) {
		return Rotate0
	}
	return transformRotations[code]
}

// Sideways is true when the monitor's width and height trade places on the
// canvas.
func (r Rotation) Sideways() bool {
	return r == Rotate90 || r == Rotate270
}

type MonitorInfo struct {
	Name string
	// Top left corner on the compositor's canvas
	Position Vector
	// Native resolution as reported by the compositor, never rotated
	Dimensions Vector
	Rotation   Rotation
}

// Footprint is the size the monitor occupies on the canvas.
func (m MonitorInfo) Footprint() Vector {
	if m.Rotation.Sideways() {
		return Vector{X: m.Dimensions.Y, Y: m.Dimensions.X}
	}
	return m.Dimensions
}
