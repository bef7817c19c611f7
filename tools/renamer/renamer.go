package renamer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
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
	"automation-toolkit/fileutil"
	"automation-toolkit/history"
	"automation-toolkit/logging"
)

// Tool is the batch renamer module.
type Tool struct {
	cfg     *config.Config
	journal *history.Store // nil disables undo
}

func New(cfg *config.Config, journal *history.Store) *Tool {
	return &Tool{cfg: cfg, journal: journal}
}

func (t *Tool) ID() string { return "renamer" }

func (t *Tool) Register(reg *core.Registry) error {
	return reg.Register(t.ID(), core.ToolInfo{
		Name:        "Renamer",
		Description: "Batch rename files",
		Icon:        theme.DocumentCreateIcon(),
	}, t.newView)
}

func (t *Tool) newView(win fyne.Window) (fyne.CanvasObject, error) {
	d, err := loadDefaults()
	if err != nil {
		return nil, err
	}
	v := &view{
		cfg:      t.cfg,
		journal:  t.journal,
		defaults: d,
		win:      win,
		log:      logging.Tool("renamer"),
		presets:  NewPresetStore(t.cfg.PresetsDir("renamer")),
	}
	return v.build(), nil
}

// view holds the form state for one open renamer window.
type view struct {
	cfg      *config.Config
	journal  *history.Store
	defaults toolDefaults
	win      fyne.Window
	log      *zap.Logger
	presets  *PresetStore

	folderEntry  *widget.Entry
	patternEntry *widget.Entry
	modeSelect   *widget.Select
	baseSelect   *widget.Select
	padEntry     *widget.Entry
	mulEntry     *widget.Entry
	offsetEntry  *widget.Entry
	prefixEntry  *widget.Entry
	postfixEntry *widget.Entry

	selectionCheck *widget.Check
	selOffsetEntry *widget.Entry
	selDivEntry    *widget.Entry
	resetCheck     *widget.Check

	outputSelect  *widget.Select
	destEntry     *widget.Entry
	preserveCheck *widget.Check
	destBox       *fyne.Container

	moveCheck      *widget.Check
	overwriteCheck *widget.Check
	verboseCheck   *widget.Check
	watchCheck     *widget.Check

	presetSelect *widget.Select

	scanBtn    *widget.Button
	previewBtn *widget.Button
	runBtn     *widget.Button
	undoBtn    *widget.Button
	openBtn    *widget.Button

	items       []previewItem
	previewList *widget.List
	thumb       *thumbnail
	progress    *widget.ProgressBar
	logView     *widget.Entry

	watcher *fileutil.Watcher
}

// --- UI construction ---

func (v *view) build() fyne.CanvasObject {
	form := v.createFormPanel()
	preview := v.createPreviewPanel()
	bottom := v.createBottomPanel()

	split := container.NewHSplit(container.NewVScroll(form), preview)
	split.SetOffset(0.42)

	if v.win != nil {
		v.win.SetOnClosed(v.teardown)
	}
	return container.NewBorder(nil, bottom, nil, nil, split)
}

func (v *view) createFormPanel() fyne.CanvasObject {
	v.folderEntry = widget.NewEntry()
	v.folderEntry.SetPlaceHolder("Folder to scan...")
	browseBtn := widget.NewButtonWithIcon("", theme.FolderOpenIcon(), func() { v.browseInto(v.folderEntry) })

	v.patternEntry = widget.NewEntry()
	v.patternEntry.SetText(v.defaults.Pattern)

	v.modeSelect = widget.NewSelect(v.defaults.RenameModes.Display, func(string) { v.updateModeControls() })
	v.baseSelect = widget.NewSelect(v.defaults.IndexBaseOptions.Display, nil)
	v.padEntry = widget.NewEntry()
	v.padEntry.SetText(strconv.Itoa(v.defaults.PadWidth))
	v.mulEntry = widget.NewEntry()
	v.mulEntry.SetText(strconv.FormatFloat(v.defaults.IndexMul, 'f', -1, 64))
	v.offsetEntry = widget.NewEntry()
	v.offsetEntry.SetText(strconv.Itoa(v.defaults.IndexOffset))
	v.prefixEntry = widget.NewEntry()
	v.prefixEntry.SetText(v.defaults.Prefix)
	v.postfixEntry = widget.NewEntry()
	v.postfixEntry.SetText(v.defaults.Postfix)

	v.selectionCheck = widget.NewCheck("Apply selection rule", func(bool) { v.refreshHighlight() })
	v.selOffsetEntry = widget.NewEntry()
	v.selOffsetEntry.SetText(strconv.Itoa(v.defaults.SelOffset))
	v.selDivEntry = widget.NewEntry()
	v.selDivEntry.SetText(strconv.Itoa(v.defaults.SelDivision))
	v.resetCheck = widget.NewCheck("Restart index per folder", nil)

	v.outputSelect = widget.NewSelect(v.defaults.OutputModes.Display, func(string) { v.updateOutputControls() })
	v.destEntry = widget.NewEntry()
	v.destEntry.SetPlaceHolder("Destination folder...")
	destBrowseBtn := widget.NewButtonWithIcon("", theme.FolderOpenIcon(), func() { v.browseInto(v.destEntry) })
	v.preserveCheck = widget.NewCheck("Mirror folder structure", nil)
	v.preserveCheck.SetChecked(true)
	v.destBox = container.NewVBox(
		container.NewBorder(nil, nil, nil, destBrowseBtn, v.destEntry),
		v.preserveCheck,
	)

	v.moveCheck = widget.NewCheck("Move instead of copy", nil)
	v.overwriteCheck = widget.NewCheck("Overwrite existing files", nil)
	v.verboseCheck = widget.NewCheck("Verbose log", nil)
	v.verboseCheck.SetChecked(true)
	v.watchCheck = widget.NewCheck("Watch folder for changes", func(on bool) { v.toggleWatch(on) })

	v.presetSelect = widget.NewSelect(v.presets.Names(), func(name string) { v.loadPreset(name) })
	v.presetSelect.PlaceHolder = "Load preset..."
	savePresetBtn := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() { v.showSavePresetDialog() })
	deletePresetBtn := widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), func() { v.deleteCurrentPreset() })

	form := container.NewVBox(
		widget.NewLabelWithStyle("Source", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, nil, browseBtn, v.folderEntry),
		widget.NewForm(
			widget.NewFormItem("Pattern", v.patternEntry),
		),
		widget.NewSeparator(),

		widget.NewLabelWithStyle("Naming", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewForm(
			widget.NewFormItem("Mode", v.modeSelect),
			widget.NewFormItem("Index base", v.baseSelect),
			widget.NewFormItem("Pad width", v.padEntry),
			widget.NewFormItem("Index multiplier", v.mulEntry),
			widget.NewFormItem("Index offset", v.offsetEntry),
			widget.NewFormItem("Prefix", v.prefixEntry),
			widget.NewFormItem("Postfix", v.postfixEntry),
		),
		v.resetCheck,
		widget.NewSeparator(),

		widget.NewLabelWithStyle("Selection", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		v.selectionCheck,
		widget.NewForm(
			widget.NewFormItem("Offset", v.selOffsetEntry),
			widget.NewFormItem("Division", v.selDivEntry),
		),
		widget.NewSeparator(),

		widget.NewLabelWithStyle("Output", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		v.outputSelect,
		v.destBox,
		v.moveCheck,
		v.overwriteCheck,
		v.verboseCheck,
		v.watchCheck,
		widget.NewSeparator(),

		widget.NewLabelWithStyle("Presets", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		v.presetSelect,
		container.NewGridWithColumns(2, savePresetBtn, deletePresetBtn),
	)

	if len(v.defaults.RenameModes.Display) > 0 {
		v.modeSelect.SetSelected(v.defaults.RenameModes.Display[0])
	}
	if len(v.defaults.IndexBaseOptions.Display) > 0 {
		v.baseSelect.SetSelected(v.defaults.IndexBaseOptions.Display[0])
	}
	if len(v.defaults.OutputModes.Display) > 0 {
		v.outputSelect.SetSelected(v.defaults.OutputModes.Display[0])
	}
	return form
}

func (v *view) createPreviewPanel() fyne.CanvasObject {
	v.previewList = widget.NewList(
		func() int { return len(v.items) },
		func() fyne.CanvasObject { return newPreviewRow() },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			if i < len(v.items) {
				o.(*previewRow).Set(v.items[i])
			}
		},
	)
	v.previewList.OnSelected = func(id widget.ListItemID) { v.showThumbnail(id) }

	v.thumb = newThumbnail(v.win)

	split := container.NewVSplit(v.previewList, v.thumb)
	split.SetOffset(0.72)
	return container.NewBorder(
		widget.NewLabelWithStyle("Preview", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		split,
	)
}

func (v *view) createBottomPanel() fyne.CanvasObject {
	v.scanBtn = widget.NewButtonWithIcon("Scan", theme.SearchIcon(), func() { v.scan(true) })
	v.previewBtn = widget.NewButtonWithIcon("Dry run", theme.VisibilityIcon(), func() { v.startWorker(true) })
	v.runBtn = widget.NewButtonWithIcon("Run", theme.ConfirmIcon(), func() { v.startWorker(false) })
	v.runBtn.Importance = widget.HighImportance
	v.undoBtn = widget.NewButtonWithIcon("Undo last batch", theme.ContentUndoIcon(), func() { v.undoLastBatch() })
	v.openBtn = widget.NewButtonWithIcon("Open folder", theme.FolderIcon(), func() { v.openFolder() })

	v.progress = widget.NewProgressBar()

	v.logView = widget.NewMultiLineEntry()
	v.logView.Wrapping = fyne.TextWrapOff
	v.logView.SetMinRowsVisible(5)
	clearBtn := widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), func() { v.logView.SetText("") })

	return container.NewVBox(
		widget.NewSeparator(),
		container.NewGridWithColumns(5, v.scanBtn, v.previewBtn, v.runBtn, v.undoBtn, v.openBtn),
		v.progress,
		container.NewBorder(nil, nil, nil, container.NewVBox(clearBtn), v.logView),
	)
}

// --- form state ---

// collect turns the form into Options. requireFolder is off when saving
// presets, which may capture the form before any folder is chosen.
func (v *view) collect(requireFolder bool) (Options, error) {
	folder := strings.TrimSpace(v.folderEntry.Text)
	if requireFolder && folder == "" {
		return Options{}, errors.New("select a folder first")
	}

	pad, err := atoiField("pad width", v.padEntry.Text)
	if err != nil {
		return Options{}, err
	}
	mul, err := floatField("index multiplier", v.mulEntry.Text)
	if err != nil {
		return Options{}, err
	}
	offset, err := atoiField("index offset", v.offsetEntry.Text)
	if err != nil {
		return Options{}, err
	}
	base, err := atoiField("index base", v.baseSelect.Selected)
	if err != nil {
		return Options{}, err
	}
	selOffset, err := atoiField("selection offset", v.selOffsetEntry.Text)
	if err != nil {
		return Options{}, err
	}
	selDiv, err := atoiField("selection division", v.selDivEntry.Text)
	if err != nil {
		return Options{}, err
	}

	opts := Options{
		Folder:  folder,
		Pattern: strings.TrimSpace(v.patternEntry.Text),
		Mode:    Mode(v.defaults.RenameModes.value(v.modeSelect.Selected)),

		IndexBase:   base,
		PadWidth:    pad,
		IndexMul:    mul,
		IndexOffset: offset,
		Prefix:      v.prefixEntry.Text,
		Postfix:     v.postfixEntry.Text,

		ApplySelection: v.selectionCheck.Checked,
		SelOffset:      selOffset,
		SelDivision:    selDiv,
		ResetPerFolder: v.resetCheck.Checked,

		PreserveTree: v.preserveCheck.Checked,

		Move:      v.moveCheck.Checked,
		Overwrite: v.overwriteCheck.Checked,
		Verbose:   v.verboseCheck.Checked,
	}

	if v.toFolderOutput() {
		dest := strings.TrimSpace(v.destEntry.Text)
		if dest == "" {
			return Options{}, errors.New("select a destination folder")
		}
		opts.DestRoot = dest
	}
	return opts, nil
}

// apply pushes a loaded preset back into the form. Presets saved
// without a folder leave the current folder alone.
func (v *view) apply(opts Options) {
	if opts.Folder != "" {
		v.folderEntry.SetText(opts.Folder)
	}
	if opts.Pattern != "" {
		v.patternEntry.SetText(opts.Pattern)
	}
	for label, value := range v.defaults.RenameModes.Mapping {
		if value == string(opts.Mode) {
			v.modeSelect.SetSelected(label)
		}
	}
	v.baseSelect.SetSelected(strconv.Itoa(opts.IndexBase))
	v.padEntry.SetText(strconv.Itoa(opts.PadWidth))
	v.mulEntry.SetText(strconv.FormatFloat(opts.IndexMul, 'f', -1, 64))
	v.offsetEntry.SetText(strconv.Itoa(opts.IndexOffset))
	v.prefixEntry.SetText(opts.Prefix)
	v.postfixEntry.SetText(opts.Postfix)
	// sel fields first: the check callback re-reads them
	v.selOffsetEntry.SetText(strconv.Itoa(opts.SelOffset))
	v.selDivEntry.SetText(strconv.Itoa(opts.SelDivision))
	v.selectionCheck.SetChecked(opts.ApplySelection)
	v.resetCheck.SetChecked(opts.ResetPerFolder)
	if len(v.defaults.OutputModes.Display) >= 2 {
		if opts.DestRoot != "" {
			v.outputSelect.SetSelected(v.defaults.OutputModes.Display[1])
		} else {
			v.outputSelect.SetSelected(v.defaults.OutputModes.Display[0])
		}
	}
	v.destEntry.SetText(opts.DestRoot)
	v.preserveCheck.SetChecked(opts.PreserveTree)
	v.moveCheck.SetChecked(opts.Move)
	v.overwriteCheck.SetChecked(opts.Overwrite)
	v.verboseCheck.SetChecked(opts.Verbose)
}

func (v *view) toFolderOutput() bool {
	return len(v.defaults.OutputModes.Display) >= 2 &&
		v.outputSelect.Selected == v.defaults.OutputModes.Display[1]
}

func (v *view) updateModeControls() {
	indexed := v.defaults.RenameModes.value(v.modeSelect.Selected) != string(ModeKeepName)
	for _, w := range []fyne.Disableable{v.baseSelect, v.padEntry, v.mulEntry, v.offsetEntry, v.resetCheck} {
		if indexed {
			w.Enable()
		} else {
			w.Disable()
		}
	}
}

func (v *view) updateOutputControls() {
	if v.destBox == nil {
		return
	}
	if v.toFolderOutput() {
		v.destBox.Show()
	} else {
		v.destBox.Hide()
	}
}

func (v *view) browseInto(target *widget.Entry) {
	if v.win == nil {
		return
	}
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		target.SetText(uri.Path())
	}, v.win)
}

// --- scan & preview ---

// scan lists the folder and fills the preview with every matching file,
// highlighting the rows a run would keep. loud controls whether problems
// surface as dialogs; the watcher path keeps them in the log only.
func (v *view) scan(loud bool) {
	opts, err := v.collect(true)
	if err != nil {
		if loud {
			v.showError(err)
		}
		return
	}

	// list everything; the highlight shows what the selection rule keeps
	planOpts := opts
	planOpts.ApplySelection = false

	go func() {
		pairs, err := BuildPlan(planOpts)
		fyne.Do(func() {
			if err != nil {
				v.log.Error("scan failed", zap.Error(err))
				if loud {
					v.showError(err)
				}
				return
			}
			v.items = buildPreviewItems(opts, pairs)
			v.previewList.UnselectAll()
			v.previewList.Refresh()
			v.appendLog(fmt.Sprintf("Scanned %d files.", len(pairs)))
		})
	}()
}

// refreshHighlight recomputes the selection highlight on the already
// scanned rows.
func (v *view) refreshHighlight() {
	if len(v.items) == 0 {
		return
	}
	opts, err := v.collect(true)
	if err != nil {
		return
	}
	sel := opts.ApplySelection && opts.SelDivision > 0
	for i := range v.items {
		if v.items[i].group {
			continue
		}
		v.items[i].selected = sel && (v.items[i].index-opts.SelOffset)%opts.SelDivision == 0
	}
	v.previewList.Refresh()
}

// buildPreviewItems groups the plan by folder for display, in the same
// case-insensitive group order the per-folder index restart uses.
func buildPreviewItems(opts Options, pairs []Pair) []previewItem {
	sel := opts.ApplySelection && opts.SelDivision > 0

	groups := make(map[string][]Pair)
	var keys []string
	for _, pr := range pairs {
		k := relParent(opts.Folder, pr.Src)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], pr)
	}
	sort.Slice(keys, func(i, j int) bool {
		return strings.ToLower(keys[i]) < strings.ToLower(keys[j])
	})

	var items []previewItem
	for _, k := range keys {
		items = append(items, previewItem{group: true, relDir: filepath.ToSlash(k)})
		for _, pr := range groups[k] {
			items = append(items, previewItem{
				relDir:   filepath.ToSlash(k),
				index:    pr.Index,
				oldName:  filepath.Base(pr.Src),
				newName:  nameFor(opts, pr),
				selected: sel && (pr.Index-opts.SelOffset)%opts.SelDivision == 0,
				path:     pr.Src,
			})
		}
	}
	return items
}

func (v *view) showThumbnail(id widget.ListItemID) {
	if id < 0 || id >= len(v.items) || v.items[id].group {
		return
	}
	path := v.items[id].path
	go func() {
		img, err := loadImage(path)
		if err != nil {
			// not an image, or unreadable: just blank the pane
			fyne.Do(func() { v.thumb.SetImage(nil, "") })
			return
		}
		fyne.Do(func() { v.thumb.SetImage(img, path) })
	}()
}

// --- running ---

func (v *view) startWorker(dryRun bool) {
	opts, err := v.collect(true)
	if err != nil {
		v.showError(err)
		return
	}
	opts.DryRun = dryRun

	v.setRunning(true)
	v.appendLog("Task started...")
	v.log.Info("user started rename", zap.String("folder", opts.Folder), zap.Bool("dry_run", dryRun))

	w := NewWorker(opts, v.journal)
	w.OnLog = func(line string) {
		fyne.Do(func() { v.appendLog(line) })
	}
	w.OnProgress = func(done, total int) {
		fyne.Do(func() { v.setProgress(done, total) })
	}

	go func() {
		sum, err := w.Run(context.Background())
		fyne.Do(func() {
			v.setRunning(false)
			if err != nil {
				v.showError(err)
				return
			}
			v.appendLog(fmt.Sprintf("Done: %d/%d files processed.", sum.Processed, sum.Total))
			if !dryRun {
				v.scan(false) // reflect the new state
			}
		})
	}()
}

func (v *view) undoLastBatch() {
	if v.journal == nil {
		v.showInfo("Undo", "No history journal available.")
		return
	}
	confirm := func(ok bool) {
		if !ok {
			return
		}
		go func() {
			n, err := UndoLastBatch(v.journal)
			fyne.Do(func() {
				if errors.Is(err, history.ErrNoBatches) {
					v.showInfo("Undo", "Nothing to undo.")
					return
				}
				if err != nil {
					v.showError(err)
					return
				}
				v.appendLog(fmt.Sprintf("Undid %d operations.", n))
				v.scan(false)
			})
		}()
	}
	if v.win == nil {
		confirm(true)
		return
	}
	dialog.ShowConfirm("Undo", "Reverse the most recent rename batch?", confirm, v.win)
}

func (v *view) openFolder() {
	target := strings.TrimSpace(v.destEntry.Text)
	if !v.toFolderOutput() || target == "" {
		target = strings.TrimSpace(v.folderEntry.Text)
	}
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
	for _, b := range []*widget.Button{v.scanBtn, v.previewBtn, v.runBtn, v.undoBtn} {
		if running {
			b.Disable()
		} else {
			b.Enable()
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
	v.log.Error("renamer error", zap.Error(err))
	if v.win != nil {
		dialog.ShowError(err, v.win)
	}
}

func (v *view) showInfo(title, msg string) {
	if v.win != nil {
		dialog.ShowInformation(title, msg, v.win)
	}
}

// --- folder watching ---

func (v *view) toggleWatch(on bool) {
	if !on {
		v.stopWatch()
		return
	}
	folder := strings.TrimSpace(v.folderEntry.Text)
	if folder == "" {
		v.watchCheck.SetChecked(false)
		v.showInfo("Watch", "Select a folder first.")
		return
	}
	w, err := fileutil.NewWatcher(folder, v.cfg.WatchDebounce, func() {
		fyne.Do(func() { v.scan(false) })
	})
	if err != nil {
		v.watchCheck.SetChecked(false)
		v.showError(err)
		return
	}
	v.watcher = w
	v.log.Info("watching folder", zap.String("folder", folder))
}

func (v *view) stopWatch() {
	if v.watcher != nil {
		v.watcher.Close()
		v.watcher = nil
	}
}

func (v *view) teardown() {
	v.stopWatch()
}

// --- presets ---

func (v *view) refreshPresets() {
	v.presetSelect.Options = v.presets.Names()
	v.presetSelect.Refresh()
}

func (v *view) loadPreset(name string) {
	if name == "" {
		return
	}
	opts, err := v.presets.Load(name)
	if err != nil {
		v.showError(err)
		return
	}
	v.apply(opts)
	v.appendLog(fmt.Sprintf("Preset %q loaded.", name))
}

func (v *view) showSavePresetDialog() {
	if v.win == nil {
		return
	}
	entry := widget.NewEntry()
	entry.SetPlaceHolder("Preset name...")
	d := dialog.NewForm("Save preset", "Save", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Name", entry)},
		func(ok bool) {
			if !ok || entry.Text == "" {
				return
			}
			opts, err := v.collect(false)
			if err != nil {
				v.showError(err)
				return
			}
			if err := v.presets.Save(entry.Text, opts); err != nil {
				v.showError(err)
				return
			}
			v.refreshPresets()
			v.showInfo("Presets", fmt.Sprintf("Preset %q saved.", entry.Text))
		}, v.win)
	d.Resize(fyne.NewSize(300, 150))
	d.Show()
}

func (v *view) deleteCurrentPreset() {
	selected := v.presetSelect.Selected
	if selected == "" {
		v.showInfo("Presets", "Select a preset first.")
		return
	}
	if v.win == nil {
		return
	}
	dialog.ShowConfirm("Delete preset", fmt.Sprintf("Delete preset %q?", selected), func(ok bool) {
		if !ok {
			return
		}
		if err := v.presets.Delete(selected); err != nil {
			v.showError(err)
			return
		}
		v.presetSelect.ClearSelected()
		v.refreshPresets()
	}, v.win)
}

// --- field parsing ---

func atoiField(label, text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%s: not a whole number: %q", label, text)
	}
	return n, nil
}

func floatField(label, text string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: not a number: %q", label, text)
	}
	return f, nil
}
