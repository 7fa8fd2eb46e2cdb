package ui

import "fmt"

// Success writes a success notice to the error writer
func (ui *UI) Success(msg string) {
	ui.notify(ui.Styles.Success.Render(ui.Styles.IconSuccess), msg)
}

// Warn writes a warning notice to the error writer
func (ui *UI) Warn(msg string) {
	ui.notify(ui.Styles.Warning.Render(ui.Styles.IconWarning), msg)
}

// Fail writes an error notice to the error writer
func (ui *UI) Fail(msg string) {
	ui.notify(ui.Styles.Error.Render(ui.Styles.IconError), msg)
}

func (ui *UI) notify(icon, msg string) {
	if ui.ErrWriter == nil {
		return
	}
	fmt.Fprintf(ui.ErrWriter, "%s %s\n", icon, msg)
}
