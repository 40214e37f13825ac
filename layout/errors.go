package layout

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyLayout means no monitors were found. Canvas and reference sizes
	// degrade to 0x0 so there is nothing sensible to crop.
	ErrEmptyLayout = errors.New("No monitors in layout")
	// ErrCanvasOverflow means a monitor extends past what a Vector can hold.
	ErrCanvasOverflow = errors.New("Canvas does not fit in 16 bits")

	errMissingLines = errors.New("Monitor block is missing lines")
)

// ParseError identifies the block and field that failed to parse, along with
// the raw text that caused it.
type ParseError struct {
	// Zero-based index of the monitor block
	Block    int
	Field    string
	Fragment string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"Invalid %s in monitor block %d [%s]: %s", e.Field, e.Block, e.Fragment, e.Err)
	}
	return fmt.Sprintf(
		"Invalid %s in monitor block %d [%s]", e.Field, e.Block, e.Fragment)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
