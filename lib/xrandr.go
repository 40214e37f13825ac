package wallsplitlib

import (
	"fmt"
	"io/ioutil"
	"log"
	"strings"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/pkg/errors"
)

// Reads the layout from RandR and renders it the way `hyprctl monitors` does,
// so X11 sessions go through the same parser.
type xrandrSource struct {
	display string
}

type crtcMonitor struct {
	name     string
	x        int16
	y        int16
	width    uint16
	height   uint16
	rotation uint16
	refresh  float64
}

func (s *xrandrSource) FetchLayout() (string, error) {
	// Stop polluting stdout
	xgb.Logger.SetOutput(ioutil.Discard)
	xgbutil.Logger.SetOutput(ioutil.Discard)

	X, err := xgbutil.NewConnDisplay(s.display)
	if err != nil {
		return "", errors.Wrapf(err, "Error connecting to X display [%s]", s.display)
	}
	defer X.Conn().Close()

	if wm, err := ewmh.GetEwmhWM(X); err == nil {
		log.Printf("Reading monitors from X display %s (%s)\n", s.display, wm)
	}

	monitors, err := queryCrtcs(X.Conn())
	if err != nil {
		return "", err
	}

	return formatXRandRLayout(monitors)
}

func queryCrtcs(Xgb *xgb.Conn) ([]crtcMonitor, error) {
	err := randr.Init(Xgb)
	if err != nil {
		return nil, errors.Wrap(err, "Error initializing RandR")
	}

	root := xproto.Setup(Xgb).DefaultScreen(Xgb).Root

	resources, err := randr.GetScreenResources(Xgb, root).Reply()
	if err != nil {
		return nil, errors.Wrap(err, "Error reading RandR screen resources")
	}

	refreshRates := make(map[randr.Mode]float64)
	for _, mode := range resources.Modes {
		if mode.Htotal != 0 && mode.Vtotal != 0 {
			refreshRates[randr.Mode(mode.Id)] =
				float64(mode.DotClock) / (float64(mode.Htotal) * float64(mode.Vtotal))
		}
	}

	monitors := []crtcMonitor{}
	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(Xgb, crtc, 0).Reply()
		if err != nil {
			return nil, errors.Wrap(err, "Error reading RandR CRTC")
		}

		// Disabled CRTCs have no outputs and no size
		if len(info.Outputs) == 0 || info.Width == 0 || info.Height == 0 {
			continue
		}

		output, err := randr.GetOutputInfo(Xgb, info.Outputs[0], 0).Reply()
		if err != nil {
			return nil, errors.Wrap(err, "Error reading RandR output")
		}

		monitors = append(monitors, crtcMonitor{
			name:     string(output.Name),
			x:        info.X,
			y:        info.Y,
			width:    info.Width,
			height:   info.Height,
			rotation: info.Rotation,
			refresh:  refreshRates[info.Mode],
		})
	}

	return monitors, nil
}

// RandR rotation bits to Wayland style transform codes, where 4-7 are flipped
func transformCode(rotation uint16) int {
	code := 0
	switch {
	case rotation&randr.RotationRotate90 != 0:
		code = 1
	case rotation&randr.RotationRotate180 != 0:
		code = 2
	case rotation&randr.RotationRotate270 != 0:
		code = 3
	}

	if rotation&(randr.RotationReflectX|randr.RotationReflectY) != 0 {
		code += 4
	}
	return code
}

func formatXRandRLayout(monitors []crtcMonitor) (string, error) {
	var sb strings.Builder

	for i, m := range monitors {
		if m.x < 0 || m.y < 0 {
			return "", fmt.Errorf(
				"Monitor [%s] has negative position %dx%d", m.name, m.x, m.y)
		}

		code := transformCode(m.rotation)

		// RandR reports the rotated size, hyprctl reports the native one
		width, height := m.width, m.height
		if code%2 == 1 {
			width, height = height, width
		}

		fmt.Fprintf(&sb, "Monitor %s (ID %d):\n", m.name, i)
		fmt.Fprintf(&sb, "\t%dx%d@%.5f at %dx%d\n", width, height, m.refresh, m.x, m.y)
		fmt.Fprintf(&sb, "\tdescription: %s\n", m.name)
		sb.WriteString("\tmake: \n")
		sb.WriteString("\tmodel: \n")
		sb.WriteString("\tserial: \n")
		sb.WriteString("\tactive workspace: 0 ()\n")
		sb.WriteString("\tspecial workspace: 0 ()\n")
		sb.WriteString("\treserved: 0 0 0 0\n")
		fmt.Fprintf(&sb, "\ttransform: %d\n", code)
		sb.WriteString("\tscale: 1.00\n")
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
