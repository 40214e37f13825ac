package wallsplitlib

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/awused/wallsplit/layout"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

type AbsolutePath = string

// CheckInputFile makes sure the source image is a readable regular file.
func CheckInputFile(file AbsolutePath) error {
	fi, err := os.Stat(file)
	if err != nil {
		return err
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("Input image [%s] is not a regular file", file)
	}

	return CheckReadable(file)
}

// ImageSize reads just enough of the file to get its dimensions. Returns nil
// for formats Go can't decode, those are left to ImageMagick.
func ImageSize(file AbsolutePath) (*image.Config, error) {
	in, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	img, _, err := image.DecodeConfig(in)
	if err == image.ErrFormat || err == bmp.ErrUnsupported {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "Error reading [%s]", file)
	}
	return &img, nil
}

// AspectDistortion is how much the source image gets stretched along one axis
// when it's resized to the canvas. 1 means the aspect ratios match.
func AspectDistortion(size image.Config, canvas layout.Vector) float64 {
	if size.Width == 0 || size.Height == 0 || canvas.X == 0 || canvas.Y == 0 {
		return 1
	}

	source := float64(size.Width) / float64(size.Height)
	target := float64(canvas.X) / float64(canvas.Y)
	if source > target {
		return source / target
	}
	return target / source
}

// DestinationFiles names each monitor's output after the monitor, keeping the
// source file's extension.
func DestinationFiles(
	input AbsolutePath, outputDir string, monitors []layout.MonitorInfo) (
	[]AbsolutePath, error) {

	ext := filepath.Ext(input)
	if ext == "" || ext == "." {
		return nil, fmt.Errorf("Could not determine extension of [%s]", input)
	}

	dir, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, err
	}

	outputs := make([]AbsolutePath, len(monitors))
	for i, m := range monitors {
		outputs[i] = filepath.Join(dir, m.Name+ext)

		for _, o := range outputs[:i] {
			if o == outputs[i] {
				return nil, fmt.Errorf("Two monitors named [%s]", m.Name)
			}
		}
	}
	return outputs, nil
}

type planDocument struct {
	Canvas    layout.Vector     `toml:"canvas"`
	Reference layout.Vector     `toml:"reference"`
	Monitors  []monitorDocument `toml:"monitor"`
}

type monitorDocument struct {
	Name       string          `toml:"name"`
	Rotation   uint16          `toml:"rotation"`
	Output     string          `toml:"output"`
	OutOfRange bool            `toml:"out_of_range"`
	Position   layout.Vector   `toml:"position"`
	Dimensions layout.Vector   `toml:"dimensions"`
	Crop       layout.CropRect `toml:"crop"`
}

// WritePlan prints the plan as TOML, for DryRun.
func WritePlan(w io.Writer, plan *layout.Plan, outputs []AbsolutePath) error {
	doc := planDocument{
		Canvas:    plan.Canvas,
		Reference: plan.Reference,
		Monitors:  make([]monitorDocument, len(plan.Monitors)),
	}

	for i, m := range plan.Monitors {
		doc.Monitors[i] = monitorDocument{
			Name:       m.Name,
			Rotation:   uint16(m.Rotation),
			Output:     outputs[i],
			OutOfRange: !plan.Crops[i].Within(plan.Canvas),
			Position:   m.Position,
			Dimensions: m.Dimensions,
			Crop:       plan.Crops[i],
		}
	}

	return toml.NewEncoder(w).Encode(doc)
}

func logCrop(m layout.MonitorInfo, crop layout.CropRect) {
	log.Printf(
		"Using crop %dx%d for %s (rotation %d, position %d, %d)\n",
		crop.Width, crop.Height, m.Name, m.Rotation, m.Position.X, m.Position.Y)
}
