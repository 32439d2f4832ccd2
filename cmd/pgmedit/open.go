package main

import (
	"os/exec"
	"runtime"
)

// openWithSystem hands path to the platform's default application.
// It is best effort: the error only reports that the opener could not start.
func openWithSystem(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	return cmd.Start()
}
