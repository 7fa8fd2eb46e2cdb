package ui

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned when no system clipboard can be reached
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// clipboardWrite is swapped in tests
var clipboardWrite = clipboard.WriteAll

// Copy places text on the system clipboard
func Copy(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboardWrite(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// CopyAndNotify copies text and reports the outcome on the error writer.
// A failure is reported as a warning and never aborts the caller.
func (ui *UI) CopyAndNotify(text, what string) {
	if err := Copy(text); err != nil {
		ui.Warn(fmt.Sprintf("Could not copy %s: %v", what, err))
		return
	}
	ui.Success(fmt.Sprintf("%s copied to clipboard", what))
}
