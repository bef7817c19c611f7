// ui/shell.go
package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"go.uber.org/zap"

	"automation-toolkit/config"
	"automation-toolkit/core"
	"automation-toolkit/logging"
	appTheme "automation-toolkit/theme"
)

const prefDarkMode = "dark_mode"

// Shell is the main window: a card grid of registered tools, each card
// opening its tool in an independent child window.
type Shell struct {
	app fyne.App
	cfg *config.Config
	reg *core.Registry
	log *zap.Logger
	win fyne.Window
}

func NewShell(app fyne.App, cfg *config.Config, reg *core.Registry) *Shell {
	return &Shell{
		app: app,
		cfg: cfg,
		reg: reg,
		log: logging.L().Named("shell"),
	}
}

// Window builds the main window on first call and returns it.
func (s *Shell) Window() fyne.Window {
	if s.win != nil {
		return s.win
	}
	s.applyTheme(s.app.Preferences().Bool(prefDarkMode))

	s.win = s.app.NewWindow("Automation Toolkit")
	s.win.Resize(fyne.NewSize(float32(s.cfg.WindowWidth), float32(s.cfg.WindowHeight)))
	s.win.SetMaster()
	s.win.SetContent(s.buildContent())
	return s.win
}

func (s *Shell) buildContent() fyne.CanvasObject {
	header := container.NewVBox(
		widget.NewLabelWithStyle("Automation Toolkit", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Select a tool to get started", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
	)

	toggleOverlay := container.NewBorder(
		container.NewHBox(layout.NewSpacer(), s.themeToggle()),
		nil, nil, nil,
	)

	body := container.NewBorder(header, nil, nil, nil, s.buildGrid())
	return container.NewStack(body, toggleOverlay)
}

func (s *Shell) buildGrid() fyne.CanvasObject {
	entries := s.reg.Tools()
	if len(entries) == 0 {
		return container.NewCenter(widget.NewLabel("No tools available."))
	}

	cols := s.cfg.GridColumns
	if cols < 1 {
		cols = 3
	}
	grid := container.NewGridWithColumns(cols)
	for _, e := range entries {
		grid.Add(s.toolCard(e))
	}
	return container.NewVScroll(container.NewPadded(grid))
}

func (s *Shell) toolCard(e core.Entry) fyne.CanvasObject {
	id := e.ID
	btn := widget.NewButtonWithIcon("Open", e.Info.Icon, func() { s.openTool(id) })
	return widget.NewCard(e.Info.Name, e.Info.Description, btn)
}

// openTool activates one tool in a fresh child window. A factory error
// or panic costs one error dialog, never the shell.
func (s *Shell) openTool(id string) {
	title := id
	if info, ok := s.reg.Info(id); ok {
		title = info.Name
	}

	child := s.app.NewWindow(title)
	child.Resize(fyne.NewSize(800, 600))

	content, err := s.createSafe(id, child)
	if err != nil {
		s.log.Error("tool failed to open", zap.String("tool", id), zap.Error(err))
		child.Close()
		dialog.ShowError(fmt.Errorf("%s could not be opened: %w", title, err), s.win)
		return
	}

	s.log.Info("tool opened", zap.String("tool", id))
	child.SetContent(content)
	child.Show()
}

func (s *Shell) createSafe(id string, win fyne.Window) (obj fyne.CanvasObject, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool panicked: %v", r)
		}
	}()
	return s.reg.CreateWidget(id, win)
}

// --- theme toggle ---

func (s *Shell) themeToggle() *widget.Button {
	dark := s.app.Preferences().Bool(prefDarkMode)

	var btn *widget.Button
	btn = widget.NewButtonWithIcon("", toggleIcon(dark), func() {
		dark = !dark
		s.app.Preferences().SetBool(prefDarkMode, dark)
		s.applyTheme(dark)
		btn.SetIcon(toggleIcon(dark))
	})
	return btn
}

func (s *Shell) applyTheme(dark bool) {
	if dark {
		s.app.Settings().SetTheme(appTheme.NewDarkTheme())
	} else {
		s.app.Settings().SetTheme(appTheme.NewLightTheme())
	}
}

// toggleIcon shows the variant the button switches to.
func toggleIcon(dark bool) fyne.Resource {
	if dark {
		return appTheme.SunIcon
	}
	return appTheme.MoonIcon
}
