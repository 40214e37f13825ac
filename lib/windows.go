// +build windows

package wallsplitlib

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
)

var sysProcAttr = &syscall.SysProcAttr{HideWindow: true}

// CheckReadable fails when the file doesn't exist or this process can't read it
func CheckReadable(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return errors.Wrapf(err, "Cannot read [%s]", file)
	}
	return f.Close()
}
