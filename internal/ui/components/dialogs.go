package components

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/osdeploy/winedition/internal/ui/theme"
)

// createBaseModal creates a base modal with common configuration.
func createBaseModal(title, message string, textColor tcell.Color, onClose func()) *tview.Modal {
	modal := tview.NewModal()
	modal.SetText(message)
	modal.SetTextColor(textColor)
	modal.SetBorderColor(theme.Colors.Border)
	modal.SetTitle(title)
	modal.SetTitleColor(theme.Colors.Title)

	modal.AddButtons([]string{"OK"})
	modal.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		if onClose != nil {
			onClose()
		}
	})

	return modal
}

// CreateInfoDialog creates an information dialog.
func CreateInfoDialog(title, message string, onClose func()) *tview.Modal {
	return createBaseModal(title, message, theme.Colors.Primary, onClose)
}

// CreateErrorDialog creates an error dialog.
func CreateErrorDialog(title, message string, onClose func()) *tview.Modal {
	return createBaseModal(title, message, theme.Colors.Error, onClose)
}

// ShowBlockingError runs a standalone error dialog and waits for the user to
// dismiss it. Used for fatal startup failures that must not scroll away under
// the deployment tooling's own output.
func ShowBlockingError(title, message string) error {
	app := tview.NewApplication()
	modal := CreateErrorDialog(title, message, func() {
		app.Stop()
	})

	return app.SetRoot(modal, true).Run()
}
