// +build !windows

package wallsplitlib

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/awused/wallsplit/layout"
)

// Records every invocation to logFile, one line each, and creates the file
// named by the last argument the way convert would.
func recordingConvert(logFile string) string {
	return `printf '%s\n' "$*" >> '` + logFile + `'
for last; do :; done
touch "$last"
`
}

// Points the package at c for the duration of the test, with a fresh temp dir.
func withConfig(t *testing.T, c *Config) {
	t.Helper()

	old := conf
	conf = c
	tempOnce = sync.Once{}
	tempDir = ""

	t.Cleanup(func() {
		if err := Cleanup(); err != nil {
			t.Error(err)
		}
		conf = old
		tempOnce = sync.Once{}
		tempDir = ""
	})
}

func fakeConvert(t *testing.T, script string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "convert")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func splitPlan(t *testing.T) *layout.Plan {
	t.Helper()

	plan, err := layout.NewPlan([]layout.MonitorInfo{
		{Name: "DP-1", Dimensions: layout.Vector{X: 1920, Y: 1080}},
		{
			Name:       "HDMI-A-1",
			Position:   layout.Vector{X: 1920, Y: 0},
			Dimensions: layout.Vector{X: 1920, Y: 1080},
			Rotation:   layout.Rotate90,
		},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return plan
}

func readConvertLog(t *testing.T, path string) []string {
	t.Helper()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
}

func TestImageMagickSplit(t *testing.T) {
	tests := []struct {
		name   string
		im7    bool
		prefix string
	}{
		{"imagemagick 6", false, "-define bmp:format=bmp3 "},
		{"imagemagick 7", true, "convert -define bmp:format=bmp3 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			logFile := filepath.Join(dir, "convert.log")
			c := &Config{
				ImageMagick:  fakeConvert(t, recordingConvert(logFile)),
				ImageMagick7: tt.im7,
			}
			withConfig(t, c)

			input := filepath.Join(dir, "source.jpg")
			if err := os.WriteFile(input, []byte("jpeg"), 0644); err != nil {
				t.Fatal(err)
			}

			plan := splitPlan(t)
			outputs, err := DestinationFiles(input, filepath.Join(dir, "out"), plan.Monitors)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			p, err := NewProcessor(c)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if err = p.Init(); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if err = p.Split(input, plan, outputs); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			calls := readConvertLog(t, logFile)
			if len(calls) != 1+len(outputs) {
				t.Fatalf("Expected %d calls, got %q", 1+len(outputs), calls)
			}

			tdir, err := TempDir()
			if err != nil {
				t.Fatal(err)
			}
			resized := filepath.Join(tdir, hashPath(input)+"-canvas.bmp")

			want := []string{
				tt.prefix + input + "[0] -auto-orient -filter Lanczos -resize 3000x1920! " + resized,
				tt.prefix + resized + " -crop 1920x1080+0+0 +repage " + wipFile(outputs[0]),
				tt.prefix + resized + " -crop 1080x1920+1920+0 +repage " + wipFile(outputs[1]),
			}
			for i := range want {
				if calls[i] != want[i] {
					t.Errorf("Call %d was\n%s\nexpected\n%s", i, calls[i], want[i])
				}
			}

			for _, out := range outputs {
				if _, err := os.Stat(out); err != nil {
					t.Errorf("Missing output [%s]: %v", out, err)
				}
				if _, err := os.Stat(wipFile(out)); !os.IsNotExist(err) {
					t.Errorf("Left behind [%s]", wipFile(out))
				}
			}
		})
	}
}

func TestImageMagickSplitFailure(t *testing.T) {
	dir := t.TempDir()
	c := &Config{ImageMagick: fakeConvert(t, `echo "convert: no decode delegate for this image format" >&2
exit 1
`)}
	withConfig(t, c)

	input := filepath.Join(dir, "source.heic")
	plan := splitPlan(t)
	outputs, err := DestinationFiles(input, dir, plan.Monitors)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	p := &imageMagick{c: c}
	err = p.Split(input, plan, outputs)
	if err == nil {
		t.Fatalf("Expected an error")
	}
	if !strings.Contains(err.Error(), "no decode delegate") {
		t.Errorf("Error [%v] does not include ImageMagick's output", err)
	}
	if !strings.Contains(err.Error(), "Error resizing") {
		t.Errorf("Error [%v] does not name the failing step", err)
	}

	for _, out := range outputs {
		if _, err := os.Stat(out); !os.IsNotExist(err) {
			t.Errorf("Wrote [%s] after a failed resize", out)
		}
	}
}

func TestImageMagickInitMissingBinary(t *testing.T) {
	p := &imageMagick{c: &Config{ImageMagick: filepath.Join(t.TempDir(), "magick")}}

	err := p.Init()
	if err == nil {
		t.Fatalf("Expected an error")
	}
	if err2 := p.Init(); err2 != err {
		t.Errorf("Second Init returned [%v], expected [%v]", err2, err)
	}
}
