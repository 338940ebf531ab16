// Package host wraps the small set of OS integrations the tracker
// needs, so commands stay testable without touching the desktop.
package host

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
)

// Host opens resources in the surrounding desktop environment.
type Host interface {
	// OpenLink opens url in the default browser.
	OpenLink(url string) error
}

// System is the real desktop integration.
type System struct{}

// OpenLink launches the platform's URL opener.
func (System) OpenLink(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// Printer writes the URL instead of opening it, for headless
// environments.
type Printer struct {
	Out io.Writer
}

func (p Printer) OpenLink(url string) error {
	_, err := fmt.Fprintln(p.Out, url)
	return err
}
