// +build !windows

package wallsplitlib

import (
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

var sysProcAttr = &syscall.SysProcAttr{}

// CheckReadable fails when the file doesn't exist or this process can't read it
func CheckReadable(file string) error {
	if err := unix.Access(file, unix.R_OK); err != nil {
		return errors.Wrapf(err, "Cannot read [%s]", file)
	}
	return nil
}
