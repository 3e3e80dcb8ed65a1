//go:build !windows

package detector

import "os/exec"

func hideWindow(_ *exec.Cmd) {}
