package share

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard copies the share text to the system clipboard.
type Clipboard struct{}

// Share implements Sharer.
func (Clipboard) Share(msg Message) error {
	if err := clipboard.WriteAll(msg.Text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
