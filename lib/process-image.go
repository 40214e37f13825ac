package wallsplitlib

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/awused/wallsplit/layout"
	"github.com/pkg/errors"
)

// Processor resizes the source image to the canvas and cuts it into one file
// per monitor.
type Processor interface {
	// Init prepares the image engine. It is safe to call more than once and
	// must be called before Split.
	Init() error
	// Split writes the crop for plan.Monitors[i] to outputs[i]. Files written
	// before a failure are left in place.
	Split(input AbsolutePath, plan *layout.Plan, outputs []AbsolutePath) error
}

func NewProcessor(c *Config) (Processor, error) {
	switch c.Processor {
	case ImageMagickProcessor:
		return &imageMagick{c: c}, nil
	case ImagingProcessor:
		return &imagingProcessor{}, nil
	}
	return nil, fmt.Errorf("Unknown Processor [%s]", c.Processor)
}

type imageMagick struct {
	c        *Config
	initOnce sync.Once
	initErr  error
}

func (im *imageMagick) Init() error {
	im.initOnce.Do(func() {
		_, err := exec.LookPath(im.c.ImageMagick)
		if err != nil {
			im.initErr = errors.Wrapf(err, "ImageMagick [%s] not found", im.c.ImageMagick)
		}
	})
	return im.initErr
}

func (im *imageMagick) Split(
	input AbsolutePath, plan *layout.Plan, outputs []AbsolutePath) error {
	if err := validateSplit(plan, outputs); err != nil {
		return err
	}

	if err := im.Init(); err != nil {
		return err
	}

	tdir, err := TempDir()
	if err != nil {
		return err
	}

	// BMP takes a lot of space but PNG takes non-trivial CPU time, and this is
	// read once per monitor
	resized := filepath.Join(tdir, hashPath(input)+"-canvas.bmp")

	// -auto-orient matches imaging.AutoOrientation in the other backend
	args := append(getBaseConvertArgs(im.c),
		input+"[0]",
		"-auto-orient",
		"-filter", "Lanczos",
		"-resize", plan.Canvas.String()+"!",
		resized)
	if err = im.run(args); err != nil {
		return errors.Wrapf(err, "Error resizing [%s] to %s", input, plan.Canvas)
	}

	for i, m := range plan.Monitors {
		crop := plan.Crops[i]
		logCrop(m, crop)

		err = createMissingDirectories(outputs[i])
		if err != nil {
			return err
		}

		wip := wipFile(outputs[i])
		args := append(getBaseConvertArgs(im.c),
			resized,
			"-crop", crop.String(),
			"+repage",
			wip)
		if err = im.run(args); err != nil {
			return errors.Wrapf(err, "Error cropping %s for monitor [%s]", crop, m.Name)
		}

		// Renaming should be atomic enough for our purposes
		if err = os.Rename(wip, outputs[i]); err != nil {
			return err
		}
	}

	return nil
}

func (im *imageMagick) run(args []string) error {
	cmd := exec.Command(im.c.ImageMagick, args...)
	cmd.SysProcAttr = sysProcAttr

	out, err := cmd.CombinedOutput()
	if err != nil && len(out) > 0 {
		return errors.Wrap(err, strings.TrimSpace(string(out)))
	}
	return err
}

func getBaseConvertArgs(c *Config) []string {
	args := []string{}
	if c.ImageMagick7 {
		args = []string{"convert"}
	}

	args = append(args, "-define", "bmp:format=bmp3")

	return args
}

func validateSplit(plan *layout.Plan, outputs []AbsolutePath) error {
	if plan == nil {
		return fmt.Errorf("Missing layout plan")
	}
	if len(outputs) != len(plan.Monitors) || len(plan.Crops) != len(plan.Monitors) {
		return fmt.Errorf(
			"Have %d outputs and %d crops for %d monitors",
			len(outputs), len(plan.Crops), len(plan.Monitors))
	}
	if plan.Canvas.X == 0 || plan.Canvas.Y == 0 {
		return fmt.Errorf("Cannot resize to an empty canvas %s", plan.Canvas)
	}
	for i, c := range plan.Crops {
		if c.Width == 0 || c.Height == 0 {
			return fmt.Errorf(
				"Empty crop %s for monitor [%s]", c, plan.Monitors[i].Name)
		}
	}
	return nil
}

// Partially written files never take the final name. The extension is kept
// since both backends pick the format from it.
func wipFile(out AbsolutePath) AbsolutePath {
	ext := filepath.Ext(out)
	return strings.TrimSuffix(out, ext) + "-wip" + ext
}

// Used to avoid collisions when creating temporary files
func hashPath(path AbsolutePath) string {
	h := sha256.Sum256([]byte(path))
	return hex.EncodeToString(h[:])
}

func createMissingDirectories(outFile AbsolutePath) error {
	return os.MkdirAll(filepath.Dir(outFile), 0755)
}
