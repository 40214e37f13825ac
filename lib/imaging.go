package wallsplitlib

import (
	"image"
	"os"

	"github.com/awused/wallsplit/layout"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Does everything in process, without ImageMagick. Limited to the formats
// imaging can encode: jpeg, png, gif, tiff and bmp.
type imagingProcessor struct{}

// Nothing to set up, the decoders register themselves on import
func (p *imagingProcessor) Init() error {
	return nil
}

func (p *imagingProcessor) Split(
	input AbsolutePath, plan *layout.Plan, outputs []AbsolutePath) error {
	if err := validateSplit(plan, outputs); err != nil {
		return err
	}

	// Fail before writing anything
	for _, out := range outputs {
		if _, err := imaging.FormatFromFilename(out); err != nil {
			return errors.Wrapf(err, "Cannot write [%s] without ImageMagick", out)
		}
	}

	src, err := imaging.Open(input, imaging.AutoOrientation(true))
	if err != nil {
		return errors.Wrapf(err, "Error reading [%s]", input)
	}

	resized := imaging.Resize(
		src, int(plan.Canvas.X), int(plan.Canvas.Y), imaging.Lanczos)

	for i, m := range plan.Monitors {
		crop := plan.Crops[i]
		logCrop(m, crop)

		err = createMissingDirectories(outputs[i])
		if err != nil {
			return err
		}

		r := image.Rect(
			int(crop.X),
			int(crop.Y),
			int(crop.X)+int(crop.Width),
			int(crop.Y)+int(crop.Height))

		wip := wipFile(outputs[i])
		err = imaging.Save(imaging.Crop(resized, r), wip, imaging.JPEGQuality(95))
		if err != nil {
			return errors.Wrapf(err, "Error writing crop for monitor [%s]", m.Name)
		}

		if err = os.Rename(wip, outputs[i]); err != nil {
			return err
		}
	}

	return nil
}
