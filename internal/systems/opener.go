package systems

import (
	"errors"
	"os/exec"
	"runtime"
)

// ErrNoLink is returned when a program has no source link
var ErrNoLink = errors.New("no source link")

// OpenExternal opens url with the platform's default handler
func OpenExternal(url string) error {
	if url == "" {
		return ErrNoLink
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
