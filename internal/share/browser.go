package share

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Browser opens the share URL in the default browser.
type Browser struct{}

// Share implements Sharer. The URL is validated before being handed to
// the system opener to prevent command injection.
func (Browser) Share(msg Message) error {
	parsed, err := url.Parse(msg.URL)
	if err != nil {
		return fmt.Errorf("invalid share URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme: %s", parsed.Scheme)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", msg.URL)
	case "darwin":
		cmd = exec.Command("open", msg.URL)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", msg.URL)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}
