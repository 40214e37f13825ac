package layout

import "fmt"

type CropRect struct {
	Width  uint16 `toml:"width"`
	Height uint16 `toml:"height"`
	X      uint16 `toml:"x"`
	Y      uint16 `toml:"y"`
}

func (r CropRect) String() string {
	return fmt.Sprintf("%dx%d%+d%+d", r.Width, r.Height, r.X, r.Y)
}

// Within reports whether the rectangle lies entirely inside a canvas of the
// given size.
func (r CropRect) Within(canvas Vector) bool {
	return uint32(r.X)+uint32(r.Width) <= uint32(canvas.X) &&
		uint32(r.Y)+uint32(r.Height) <= uint32(canvas.Y)
}

// Crop sizes every monitor after the reference monitor, not after its own
// dimensions. On layouts mixing resolutions smaller monitors get a crop the
// size of the reference monitor; that is the existing behaviour and callers
// rely on it.
//
// Only the size is rotated. The position is the monitor's canvas position.
func Crop(m MonitorInfo, reference Vector) CropRect {
	r := CropRect{
		Width:  reference.X,
		Height: reference.Y,
		X:      m.Position.X,
		Y:      m.Position.Y,
	}

	if m.Rotation.Sideways() {
		r.Width, r.Height = r.Height, r.Width
	}

	return r
}
