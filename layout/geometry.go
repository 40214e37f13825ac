package layout

import (
	"math"

	"github.com/pkg/errors"
)

// Canvas is the bounding box of every monitor's footprint, anchored at 0x0.
// An empty layout has a 0x0 canvas.
func Canvas(monitors []MonitorInfo) (Vector, error) {
	var width, height uint32

	for _, m := range monitors {
		f := m.Footprint()
		right := uint32(m.Position.X) + uint32(f.X)
		bottom := uint32(m.Position.Y) + uint32(f.Y)

		if right > math.MaxUint16 || bottom > math.MaxUint16 {
			return Vector{}, errors.Wrapf(
				ErrCanvasOverflow, "Monitor [%s] extends to %dx%d", m.Name, right, bottom)
		}

		if right > width {
			width = right
		}
		if bottom > height {
			height = bottom
		}
	}

	return Vector{X: uint16(width), Y: uint16(height)}, nil
}

// ReferenceDimensions picks the monitor that is widest on the canvas and
// returns its native, unrotated, dimensions. The first monitor wins ties.
// An empty layout returns 0x0.
func ReferenceDimensions(monitors []MonitorInfo) Vector {
	var widest uint16
	reference := Vector{}

	for _, m := range monitors {
		if w := m.Footprint().X; w > widest {
			widest = w
			reference = m.Dimensions
		}
	}

	return reference
}
