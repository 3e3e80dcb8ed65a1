// Package theme provides the semantic color palette for the selection dialog.
//
// Colors map to standard ANSI colors so the dialog adapts to whatever color
// scheme the deployment environment's terminal uses.
package theme

import "github.com/gdamore/tcell/v2"

// Colors defines the semantic color palette for the application.
var Colors = struct {
	Primary    tcell.Color // Main text and UI elements
	Secondary  tcell.Color // Supporting text and labels
	Error      tcell.Color // Error states
	Background tcell.Color // Main background
	Border     tcell.Color // Border and separator lines
	Title      tcell.Color // Dialog titles
	HeaderText tcell.Color // Form labels
}{
	Primary:    tcell.ColorWhite,
	Secondary:  tcell.ColorGray,
	Error:      tcell.ColorRed,
	Background: tcell.ColorDefault,
	Border:     tcell.ColorGray,
	Title:      tcell.ColorWhite,
	HeaderText: tcell.ColorYellow,
}
