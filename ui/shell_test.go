package ui

import (
	"errors"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/require"

	"automation-toolkit/config"
	"automation-toolkit/core"
)

func stubFactory(fyne.Window) (fyne.CanvasObject, error) {
	return canvas.NewRectangle(color.Transparent), nil
}

func testShell(t *testing.T, reg *core.Registry) *Shell {
	t.Helper()
	app := test.NewApp()
	cfg := &config.Config{WindowWidth: 800, WindowHeight: 600, GridColumns: 3}
	return NewShell(app, cfg, reg)
}

func countCards(o fyne.CanvasObject) int {
	switch v := o.(type) {
	case *widget.Card:
		return 1
	case *fyne.Container:
		n := 0
		for _, c := range v.Objects {
			n += countCards(c)
		}
		return n
	case *container.Scroll:
		return countCards(v.Content)
	}
	return 0
}

func containsLabel(o fyne.CanvasObject, text string) bool {
	switch v := o.(type) {
	case *widget.Label:
		return v.Text == text
	case *fyne.Container:
		for _, c := range v.Objects {
			if containsLabel(c, text) {
				return true
			}
		}
	case *container.Scroll:
		return containsLabel(v.Content, text)
	}
	return false
}

func findWindow(app fyne.App, title string) fyne.Window {
	for _, w := range app.Driver().AllWindows() {
		if w.Title() == title {
			return w
		}
	}
	return nil
}

func TestWindowBuildsOnce(t *testing.T) {
	reg := core.NewRegistry()
	require.NoError(t, reg.Register("a", core.ToolInfo{Name: "A"}, stubFactory))

	s := testShell(t, reg)
	win := s.Window()
	require.NotNil(t, win)
	require.Equal(t, "Automation Toolkit", win.Title())
	require.Same(t, win, s.Window())
}

func TestGridShowsOneCardPerTool(t *testing.T) {
	reg := core.NewRegistry()
	require.NoError(t, reg.Register("a", core.ToolInfo{Name: "A", Description: "first"}, stubFactory))
	require.NoError(t, reg.Register("b", core.ToolInfo{Name: "B", Description: "second"}, stubFactory))

	s := testShell(t, reg)
	content := s.Window().Content()
	require.Equal(t, 2, countCards(content))
	require.True(t, containsLabel(content, "Select a tool to get started"))
}

func TestEmptyRegistryShowsPlaceholder(t *testing.T) {
	s := testShell(t, core.NewRegistry())
	content := s.Window().Content()
	require.Equal(t, 0, countCards(content))
	require.True(t, containsLabel(content, "No tools available."))
}

func TestCreateSafeFencesFailures(t *testing.T) {
	reg := core.NewRegistry()
	boom := errors.New("boom")
	require.NoError(t, reg.Register("bad", core.ToolInfo{Name: "Bad"}, func(fyne.Window) (fyne.CanvasObject, error) {
		return nil, boom
	}))
	require.NoError(t, reg.Register("panics", core.ToolInfo{Name: "Panics"}, func(fyne.Window) (fyne.CanvasObject, error) {
		panic("kaboom")
	}))
	require.NoError(t, reg.Register("good", core.ToolInfo{Name: "Good"}, stubFactory))

	s := testShell(t, reg)
	s.Window()

	_, err := s.createSafe("bad", nil)
	require.ErrorIs(t, err, boom)

	_, err = s.createSafe("panics", nil)
	require.ErrorContains(t, err, "panicked")

	_, err = s.createSafe("missing", nil)
	require.ErrorIs(t, err, core.ErrToolNotFound)

	obj, err := s.createSafe("good", nil)
	require.NoError(t, err)
	require.NotNil(t, obj)
}

func TestShellStaysUsableAfterBrokenTool(t *testing.T) {
	reg := core.NewRegistry()
	require.NoError(t, reg.Register("bad", core.ToolInfo{Name: "Bad"}, func(fyne.Window) (fyne.CanvasObject, error) {
		return nil, errors.New("boom")
	}))
	require.NoError(t, reg.Register("panics", core.ToolInfo{Name: "Panics"}, func(fyne.Window) (fyne.CanvasObject, error) {
		panic("kaboom")
	}))
	require.NoError(t, reg.Register("good", core.ToolInfo{Name: "Good"}, stubFactory))

	s := testShell(t, reg)
	s.Window()

	s.openTool("bad")
	s.openTool("panics")
	s.openTool("missing")

	// a healthy tool still opens its own window afterwards
	s.openTool("good")
	require.NotNil(t, findWindow(s.app, "Good"))
}

func TestThemeTogglePersists(t *testing.T) {
	s := testShell(t, core.NewRegistry())
	s.Window()
	require.False(t, s.app.Preferences().Bool(prefDarkMode))

	btn := s.themeToggle()
	test.Tap(btn)
	require.True(t, s.app.Preferences().Bool(prefDarkMode))

	test.Tap(btn)
	require.False(t, s.app.Preferences().Bool(prefDarkMode))
}
