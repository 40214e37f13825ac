package wallsplitlib

import (
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

type hyprlandSource struct {
	hyprctl string
}

func (h *hyprlandSource) FetchLayout() (string, error) {
	cmd := exec.Command(h.hyprctl, "monitors")
	cmd.SysProcAttr = sysProcAttr

	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return "", errors.Wrapf(err, "Error running [%s monitors]: %s",
				h.hyprctl, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", errors.Wrapf(err, "Error running [%s monitors]", h.hyprctl)
	}

	return string(out), nil
}
