package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/awused/wallsplit/layout"
	lib "github.com/awused/wallsplit/lib"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// Past this the stretch is usually visible
const maxDistortion = 1.1

func splitAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("Missing input file")
	}
	if c.NArg() > 1 {
		return errors.Errorf("Expected one input file, got %d arguments", c.NArg())
	}

	input, err := filepath.Abs(c.Args().First())
	if err != nil {
		return err
	}

	if err = lib.CheckInputFile(input); err != nil {
		return err
	}

	conf, err := lib.Init()
	if err != nil {
		return err
	}

	if conf.LogFile != "" {
		f, err := os.OpenFile(conf.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return errors.Wrapf(err, "Error opening log file [%s]", conf.LogFile)
		}
		defer f.Close()

		log.SetOutput(f)
		defer log.SetOutput(os.Stderr)
	}

	plan, err := readLayout(conf)
	if err != nil {
		return err
	}

	outputs, err := lib.DestinationFiles(input, conf.OutputDirectory, plan.Monitors)
	if err != nil {
		return err
	}

	if conf.DryRun {
		return lib.WritePlan(os.Stdout, plan, outputs)
	}

	size, err := lib.ImageSize(input)
	if err != nil {
		return err
	}
	if size != nil {
		log.Printf("Resizing %dx%d image [%s] to %s\n",
			size.Width, size.Height, input, plan.Canvas)

		if d := lib.AspectDistortion(*size, plan.Canvas); d > maxDistortion {
			log.Printf(
				"Image [%s] will be stretched by %.0f%% to fit the canvas\n",
				input, (d-1)*100)
		}
	}

	p, err := lib.NewProcessor(conf)
	if err != nil {
		return err
	}

	if err = p.Init(); err != nil {
		return err
	}

	return p.Split(input, plan, outputs)
}

func readLayout(conf *lib.Config) (*layout.Plan, error) {
	source, err := lib.NewLayoutSource(conf)
	if err != nil {
		return nil, err
	}

	raw, err := source.FetchLayout()
	if err != nil {
		return nil, err
	}

	monitors, err := layout.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "Error parsing %s monitor layout", conf.LayoutSource)
	}

	plan, err := layout.NewPlan(monitors)
	if err == layout.ErrEmptyLayout {
		return nil, errors.Wrapf(err,
			"Check that LayoutSource [%s] matches the running session", conf.LayoutSource)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("Canvas is %s, cropping every monitor at %s\n", plan.Canvas, plan.Reference)
	for _, m := range plan.OutOfBounds() {
		log.Printf("Crop for monitor [%s] extends past the canvas and will be clipped\n", m.Name)
	}

	return plan, nil
}
