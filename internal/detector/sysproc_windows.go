//go:build windows

package detector

import (
	"os/exec"
	"syscall"
)

// hideWindow keeps the detector's console window from flashing over the
// dialog. The tool runs during an interactive deployment step.
func hideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}
