// Package components contains the tview widgets of the selection dialog.
package components

import (
	"github.com/rivo/tview"

	"github.com/osdeploy/winedition/internal/edition"
	"github.com/osdeploy/winedition/internal/ui/theme"
)

// SelectionResult is delivered on the result channel when the dialog closes.
type SelectionResult struct {
	Outcome  edition.Outcome
	Canceled bool
}

const (
	editionLabel = "Windows Edition"
	familyLabel  = "OS Family"
)

// NewSelectionPage builds the edition selection form. The resolver owns the
// option lists and the confirm guard; this only wires them to tview. Exactly
// one SelectionResult is sent on resultChan before the application stops.
func NewSelectionPage(app *tview.Application, resolver *edition.Resolver, resultChan chan<- SelectionResult) tview.Primitive {
	form := tview.NewForm().SetHorizontal(false)
	form.SetLabelColor(theme.Colors.HeaderText)
	form.SetBorder(true)
	form.SetTitle(" Select Windows Edition ")
	form.SetTitleColor(theme.Colors.Title)
	form.SetBorderColor(theme.Colors.Border)

	editionOpts := resolver.EditionOptions()
	editionSel := editionOpts[resolver.DefaultEditionIndex()]

	familySel := ""
	familyOpts := resolver.FamilyOptions()
	if familyOpts != nil {
		familySel = familyOpts[resolver.DefaultFamilyIndex()]
	}

	updateGuard := func() {
		// The OK button is the first button; it only exists once both
		// dropdowns and buttons have been added.
		if form.GetButtonCount() == 0 {
			return
		}
		form.GetButton(0).SetDisabled(!resolver.ConfirmEnabled(editionSel, familySel))
	}

	if familyOpts != nil {
		form.AddDropDown(familyLabel, familyOpts, resolver.DefaultFamilyIndex(), func(text string, index int) {
			familySel = text
			updateGuard()
		})
	}

	form.AddDropDown(editionLabel, editionOpts, resolver.DefaultEditionIndex(), func(text string, index int) {
		editionSel = text
		updateGuard()
	})

	finish := func(res SelectionResult) {
		resultChan <- res
		app.Stop()
	}

	form.AddButton("OK", func() {
		outcome, err := resolver.Resolve(editionSel, familySel)
		if err != nil {
			// Guarded by the disabled button; treat a slip-through as a no-op.
			return
		}
		finish(SelectionResult{Outcome: outcome})
	})
	form.AddButton("Cancel", func() {
		finish(SelectionResult{Canceled: true})
	})

	// Escape cancels, matching the Cancel button.
	form.SetCancelFunc(func() {
		finish(SelectionResult{Canceled: true})
	})

	updateGuard()

	return centered(form, 60, formHeight(form))
}

// formHeight estimates the rows the form needs: two per item plus the button
// row and the border.
func formHeight(form *tview.Form) int {
	return form.GetFormItemCount()*2 + 5
}

// centered wraps a primitive in flex spacers so the dialog floats in the
// middle of the screen.
func centered(p tview.Primitive, width, height int) tview.Primitive {
	row := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(p, width, 0, true).
		AddItem(nil, 0, 1, false)

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(row, height, 0, true).
		AddItem(nil, 0, 1, false)
}
