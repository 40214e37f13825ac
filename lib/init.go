package wallsplitlib

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/awused/awconf"
	"github.com/pkg/errors"
)

const (
	HyprlandSource = "hyprland"
	XRandRSource   = "xrandr"

	ImageMagickProcessor = "imagemagick"
	ImagingProcessor     = "imaging"
)

type Config struct {
	LogFile         string
	TempDirectory   string
	OutputDirectory string
	// Where to read the monitor layout from, "hyprland" or "xrandr"
	LayoutSource string
	Hyprctl      string
	// X11 display for the xrandr source, defaults to $DISPLAY
	Display string
	// How images are resized and cropped, "imagemagick" or "imaging"
	Processor    string
	ImageMagick7 bool
	ImageMagick  string
	// Print the computed crops and exit without touching any images
	DryRun bool
}

var conf *Config

var tempDir string
var tempErr error
var tempOnce sync.Once

func TempDir() (string, error) {
	c, err := GetConfig()
	if err != nil {
		return "", err
	}

	tempOnce.Do(func() {
		tempDir, tempErr = ioutil.TempDir(c.TempDirectory, "wallsplit")
	})

	return tempDir, tempErr
}

func GetConfig() (*Config, error) {
	if conf != nil {
		return conf, nil
	}

	return nil, fmt.Errorf("Init never called")
}

// Be sure to defer Cleanup() after calling this
// The config file is optional, without one every setting takes its default. A
// config file that exists but can't be read is still an error.
func Init() (*Config, error) {
	c := &Config{}

	err := awconf.LoadConfig("wallsplit", c)
	if isMissingConfig(err) {
		log.Printf("Not using a config file: %s\n", err)
		c = &Config{}
	} else if err != nil {
		return nil, errors.Wrap(err, "Error loading wallsplit config")
	}

	err = c.validate()
	if err != nil {
		return nil, err
	}

	conf = c
	return c, nil
}

// awconf doesn't export its not found error
func isMissingConfig(err error) bool {
	return err != nil &&
		strings.HasPrefix(err.Error(), "Unable to find config file for ")
}

func Cleanup() error {
	// tempDir is private and can't be set outside of this package
	if tempDir != "" {
		return os.RemoveAll(tempDir)
	}
	return nil
}

func (c *Config) validate() error {
	if c.TempDirectory != "" {
		fi, err := os.Stat(c.TempDirectory)
		if err != nil {
			return err
		}
		if !fi.IsDir() {
			return fmt.Errorf("TempDirectory [%s] is not a directory", c.TempDirectory)
		}
	}

	if c.OutputDirectory == "" {
		c.OutputDirectory = "."
	}

	fi, err := os.Stat(c.OutputDirectory)
	if err != nil {
		return fmt.Errorf(
			"Error calling os.Stat on OutputDirectory [%s]: %s", c.OutputDirectory, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("OutputDirectory [%s] is not a directory", c.OutputDirectory)
	}

	switch c.LayoutSource {
	case "":
		c.LayoutSource = HyprlandSource
	case HyprlandSource, XRandRSource:
	default:
		return fmt.Errorf("Unknown LayoutSource [%s]", c.LayoutSource)
	}

	if c.Hyprctl == "" {
		c.Hyprctl = "hyprctl"
	}

	if c.Display == "" {
		c.Display = os.Getenv("DISPLAY")
	}
	if c.LayoutSource == XRandRSource && c.Display == "" {
		return fmt.Errorf("LayoutSource is xrandr but no Display is set")
	}

	switch c.Processor {
	case "":
		c.Processor = ImageMagickProcessor
	case ImageMagickProcessor, ImagingProcessor:
	default:
		return fmt.Errorf("Unknown Processor [%s]", c.Processor)
	}

	if c.ImageMagick == "" {
		if c.ImageMagick7 {
			c.ImageMagick = "magick"
		} else {
			c.ImageMagick = "convert"
		}
	}

	return nil
}
