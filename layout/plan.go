package layout

// Plan is everything needed to cut one source image into per-monitor files.
// Crops[i] belongs to Monitors[i].
type Plan struct {
	Canvas    Vector
	Reference Vector
	Monitors  []MonitorInfo
	Crops     []CropRect
}

// NewPlan computes the canvas, the reference dimensions and every crop.
// An empty layout is an error.
func NewPlan(monitors []MonitorInfo) (*Plan, error) {
	if len(monitors) == 0 {
		return nil, ErrEmptyLayout
	}

	canvas, err := Canvas(monitors)
	if err != nil {
		return nil, err
	}

	p := &Plan{
		Canvas:    canvas,
		Reference: ReferenceDimensions(monitors),
		Monitors:  monitors,
		Crops:     make([]CropRect, len(monitors)),
	}

	for i, m := range monitors {
		p.Crops[i] = Crop(m, p.Reference)
	}

	return p, nil
}

// OutOfBounds lists the monitors whose crop extends past the canvas. Image
// backends clip these crops to the image.
func (p *Plan) OutOfBounds() []MonitorInfo {
	out := []MonitorInfo{}
	for i, r := range p.Crops {
		if !r.Within(p.Canvas) {
			out = append(out, p.Monitors[i])
		}
	}
	return out
}
