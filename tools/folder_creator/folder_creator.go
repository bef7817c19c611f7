package folder_creator

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/skratchdot/open-golang/open"
	"go.uber.org/zap"

	"automation-toolkit/config"
	"automation-toolkit/core"
	"automation-toolkit/logging"
)

// Tool is the numbered folder batch module.
type Tool struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Tool {
	return &Tool{cfg: cfg}
}

func (t *Tool) ID() string { return "folder_creator" }

func (t *Tool) Register(reg *core.Registry) error {
	return reg.Register(t.ID(), core.ToolInfo{
		Name:        "Folder Creator",
		Description: "Create numbered folder batches",
		Icon:        theme.FolderNewIcon(),
	}, t.newView)
}

func (t *Tool) newView(win fyne.Window) (fyne.CanvasObject, error) {
	d, err := loadDefaults()
	if err != nil {
		return nil, err
	}
	v := &view{win: win, log: logging.Tool("folder_creator"), defaults: d}
	return v.build(), nil
}

type view struct {
	win      fyne.Window
	log      *zap.Logger
	defaults toolDefaults

	parentEntry *widget.Entry
	countEntry  *widget.Entry
	prefixEntry *widget.Entry
	suffixEntry *widget.Entry
	padEntry    *widget.Entry
	startEntry  *widget.Entry

	runBtn   *widget.Button
	openBtn  *widget.Button
	progress *widget.ProgressBar
	logView  *widget.Entry
}

func (v *view) build() fyne.CanvasObject {
	v.parentEntry = widget.NewEntry()
	v.parentEntry.SetPlaceHolder("Parent folder...")
	browseBtn := widget.NewButtonWithIcon("", theme.FolderOpenIcon(), func() { v.browse() })

	v.countEntry = widget.NewEntry()
	v.countEntry.SetText(strconv.Itoa(v.defaults.Count))
	v.prefixEntry = widget.NewEntry()
	v.prefixEntry.SetText(v.defaults.Prefix)
	v.suffixEntry = widget.NewEntry()
	v.suffixEntry.SetText(v.defaults.Suffix)
	v.padEntry = widget.NewEntry()
	v.padEntry.SetText(strconv.Itoa(v.defaults.Padding))
	v.startEntry = widget.NewEntry()
	v.startEntry.SetText(strconv.Itoa(v.defaults.Start))

	form := widget.NewForm(
		widget.NewFormItem("Count", v.countEntry),
		widget.NewFormItem("Prefix", v.prefixEntry),
		widget.NewFormItem("Suffix", v.suffixEntry),
		widget.NewFormItem("Padding", v.padEntry),
		widget.NewFormItem("Start index", v.startEntry),
	)

	v.runBtn = widget.NewButtonWithIcon("Create folders", theme.FolderNewIcon(), func() { v.run() })
	v.runBtn.Importance = widget.HighImportance
	v.openBtn = widget.NewButtonWithIcon("Open folder", theme.FolderIcon(), func() { v.openParent() })

	v.progress = widget.NewProgressBar()

	v.logView = widget.NewMultiLineEntry()
	v.logView.Wrapping = fyne.TextWrapOff
	clearBtn := widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), func() { v.logView.SetText("") })

	top := container.NewVBox(
		widget.NewLabelWithStyle("Parent folder", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, nil, browseBtn, v.parentEntry),
		form,
		container.NewGridWithColumns(2, v.runBtn, v.openBtn),
		v.progress,
		container.NewBorder(nil, nil, widget.NewLabel("Log"), clearBtn),
	)
	return container.NewBorder(top, nil, nil, nil, v.logView)
}

func (v *view) collect() (Options, error) {
	count, err := intField("count", v.countEntry.Text)
	if err != nil {
		return Options{}, err
	}
	padding, err := intField("padding", v.padEntry.Text)
	if err != nil {
		return Options{}, err
	}
	start, err := intField("start index", v.startEntry.Text)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Parent:  strings.TrimSpace(v.parentEntry.Text),
		Count:   count,
		Prefix:  strings.TrimSpace(v.prefixEntry.Text),
		Suffix:  strings.TrimSpace(v.suffixEntry.Text),
		Padding: padding,
		Start:   start,
	}, nil
}

func (v *view) run() {
	opts, err := v.collect()
	if err != nil {
		v.showError(err)
		return
	}

	v.setRunning(true)
	v.appendLog("Task started...")
	v.log.Info("user started folder creation",
		zap.String("parent", opts.Parent), zap.Int("count", opts.Count))

	w := NewWorker(opts)
	w.OnLog = func(line string) {
		fyne.Do(func() { v.appendLog(line) })
	}
	w.OnProgress = func(done, total int) {
		fyne.Do(func() { v.setProgress(done, total) })
	}

	go func() {
		n, err := w.Run(context.Background())
		fyne.Do(func() {
			v.setRunning(false)
			if err != nil {
				v.appendLog("Error: " + err.Error())
				v.showError(err)
				return
			}
			msg := fmt.Sprintf("Done: %d folders in place.", n)
			v.appendLog(msg)
			v.showInfo(msg)
		})
	}()
}

func (v *view) browse() {
	if v.win == nil {
		return
	}
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		v.parentEntry.SetText(uri.Path())
	}, v.win)
}

func (v *view) openParent() {
	target := strings.TrimSpace(v.parentEntry.Text)
	if target == "" {
		return
	}
	if err := open.Run(target); err != nil {
		if err2 := open.Start(target); err2 != nil {
			v.showError(err2)
		}
	}
}

func (v *view) setRunning(running bool) {
	ws := []fyne.Disableable{
		v.parentEntry, v.countEntry, v.prefixEntry,
		v.suffixEntry, v.padEntry, v.startEntry, v.runBtn,
	}
	for _, w := range ws {
		if running {
			w.Disable()
		} else {
			w.Enable()
		}
	}
}

func (v *view) setProgress(done, total int) {
	if total <= 0 {
		v.progress.SetValue(0)
		return
	}
	v.progress.Max = float64(total)
	v.progress.SetValue(float64(done))
}

func (v *view) appendLog(line string) {
	if v.logView.Text == "" {
		v.logView.SetText(line)
		return
	}
	v.logView.SetText(v.logView.Text + "\n" + line)
}

func (v *view) showError(err error) {
	v.log.Error("folder creator error", zap.Error(err))
	if v.win != nil {
		dialog.ShowError(err, v.win)
	}
}

func (v *view) showInfo(msg string) {
	if v.win != nil {
		dialog.ShowInformation("Folder Creator", msg, v.win)
	}
}

func intField(label, text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%s: not a whole number: %q", label, text)
	}
	return n, nil
}
