// core/tool.go
package core

import "fyne.io/fyne/v2"

// ToolInfo describes one installable tool the way the shell presents it.
type ToolInfo struct {
	Name        string
	Description string
	Icon        fyne.Resource // nil is fine, the shell falls back to a stock icon
}

// WidgetFactory builds a fresh, ready-to-show view for a tool. The window
// argument is the window the view will live in; tools keep it around as the
// parent for their dialogs. Headless callers and tests may pass nil.
type WidgetFactory func(win fyne.Window) (fyne.CanvasObject, error)

// Module is one registrable tool package. Register binds the module's
// ToolInfo and WidgetFactory into the given registry under its chosen id.
// A module must tolerate being handed a registry that already holds other
// tools.
type Module interface {
	ID() string
	Register(reg *Registry) error
}
