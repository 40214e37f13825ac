package wallsplitlib

import "fmt"

// LayoutSource produces monitor layouts in the text format read by
// layout.Parse.
type LayoutSource interface {
	FetchLayout() (string, error)
}

func NewLayoutSource(c *Config) (LayoutSource, error) {
	switch c.LayoutSource {
	case HyprlandSource:
		return &hyprlandSource{hyprctl: c.Hyprctl}, nil
	case XRandRSource:
		return &xrandrSource{display: c.Display}, nil
	}
	return nil, fmt.Errorf("Unknown LayoutSource [%s]", c.LayoutSource)
}
