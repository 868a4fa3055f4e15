package clipboard

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// Copy puts text on the system clipboard. It tries the native clipboard
// first (pbcopy, wl-copy, xclip, etc.) and falls back to the OSC 52
// escape sequence so yanking still works over SSH and inside tmux.
func Copy(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}
	return copyOSC52(text)
}

func copyOSC52(text string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	seq := fmt.Sprintf("\x1b]52;c;%s\x07", encoded)
	_, err := os.Stderr.Write([]byte(seq))
	return err
}
