package renamer

import (
	"strconv"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"automation-toolkit/config"
	"automation-toolkit/core"
	"automation-toolkit/logging"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		LogDir:        dir,
		DataDir:       dir,
		WindowWidth:   1000,
		WindowHeight:  700,
		GridColumns:   3,
		WatchDebounce: 50 * time.Millisecond,
	}
}

func testView(t *testing.T) *view {
	t.Helper()
	test.NewApp()
	d, err := loadDefaults()
	require.NoError(t, err)
	v := &view{
		cfg:      testConfig(t),
		defaults: d,
		log:      logging.Tool("renamer"),
		presets:  NewPresetStore(t.TempDir()),
	}
	v.build()
	return v
}

func TestRegister(t *testing.T) {
	reg := core.NewRegistry()
	require.NoError(t, New(testConfig(t), nil).Register(reg))

	info, ok := reg.Info("renamer")
	require.True(t, ok)
	require.Equal(t, "Renamer", info.Name)
	require.Equal(t, "Batch rename files", info.Description)
	require.NotNil(t, info.Icon)
}

func TestViewBuildsWithoutWindow(t *testing.T) {
	test.NewApp()

	reg := core.NewRegistry()
	require.NoError(t, New(testConfig(t), nil).Register(reg))

	obj, err := reg.CreateWidget("renamer", nil)
	require.NoError(t, err)
	require.NotNil(t, obj)
}

func TestDefaultsFillForm(t *testing.T) {
	v := testView(t)

	require.Equal(t, v.defaults.Pattern, v.patternEntry.Text)
	require.Equal(t, v.defaults.Prefix, v.prefixEntry.Text)
	require.Equal(t, strconv.Itoa(v.defaults.PadWidth), v.padEntry.Text)
	require.Equal(t, v.defaults.RenameModes.Display[0], v.modeSelect.Selected)
	require.Equal(t, v.defaults.OutputModes.Display[0], v.outputSelect.Selected)
	// renaming in place needs no destination controls
	require.False(t, v.destBox.Visible())
}

func TestCollectParsesForm(t *testing.T) {
	v := testView(t)
	dir := t.TempDir()

	v.folderEntry.SetText(dir)
	v.patternEntry.SetText("*.png")
	v.padEntry.SetText("3")
	v.mulEntry.SetText("2.5")
	v.offsetEntry.SetText("10")
	v.prefixEntry.SetText("shot")
	v.postfixEntry.SetText("v2")
	v.selectionCheck.SetChecked(true)
	v.selDivEntry.SetText("4")
	v.moveCheck.SetChecked(true)

	opts, err := v.collect(true)
	require.NoError(t, err)
	require.Equal(t, dir, opts.Folder)
	require.Equal(t, "*.png", opts.Pattern)
	require.Equal(t, ModeNewName, opts.Mode)
	require.Equal(t, 3, opts.PadWidth)
	require.Equal(t, 2.5, opts.IndexMul)
	require.Equal(t, 10, opts.IndexOffset)
	require.Equal(t, "shot", opts.Prefix)
	require.Equal(t, "v2", opts.Postfix)
	require.True(t, opts.ApplySelection)
	require.Equal(t, 4, opts.SelDivision)
	require.True(t, opts.Move)
	require.Empty(t, opts.DestRoot)
}

func TestCollectRejectsBadNumbers(t *testing.T) {
	v := testView(t)
	v.folderEntry.SetText(t.TempDir())

	v.padEntry.SetText("four")
	_, err := v.collect(true)
	require.ErrorContains(t, err, "pad width")

	v.padEntry.SetText("4")
	v.mulEntry.SetText("a lot")
	_, err = v.collect(true)
	require.ErrorContains(t, err, "index multiplier")
}

func TestCollectRequiresFolderAndDest(t *testing.T) {
	v := testView(t)

	_, err := v.collect(true)
	require.ErrorContains(t, err, "folder")

	// preset capture tolerates the missing folder
	_, err = v.collect(false)
	require.NoError(t, err)

	v.folderEntry.SetText(t.TempDir())
	v.outputSelect.SetSelected(v.defaults.OutputModes.Display[1])
	require.True(t, v.destBox.Visible())
	_, err = v.collect(true)
	require.ErrorContains(t, err, "destination")

	dest := t.TempDir()
	v.destEntry.SetText(dest)
	opts, err := v.collect(true)
	require.NoError(t, err)
	require.Equal(t, dest, opts.DestRoot)
}

func TestApplyRoundTrips(t *testing.T) {
	v := testView(t)
	want := Options{
		Folder:         t.TempDir(),
		Pattern:        "*.tif",
		Mode:           ModeKeepName,
		IndexBase:      0,
		PadWidth:       6,
		IndexMul:       1,
		IndexOffset:    5,
		Prefix:         "final",
		Postfix:        "done",
		ApplySelection: true,
		SelOffset:      1,
		SelDivision:    3,
		ResetPerFolder: true,
		DestRoot:       t.TempDir(),
		PreserveTree:   true,
		Move:           true,
		Overwrite:      true,
		Verbose:        true,
	}

	v.apply(want)
	got, err := v.collect(true)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestKeepNameModeDisablesIndexFields(t *testing.T) {
	v := testView(t)

	for label, value := range v.defaults.RenameModes.Mapping {
		if value == string(ModeKeepName) {
			v.modeSelect.SetSelected(label)
		}
	}
	require.True(t, v.padEntry.Disabled())
	require.True(t, v.baseSelect.Disabled())
	require.True(t, v.resetCheck.Disabled())

	for label, value := range v.defaults.RenameModes.Mapping {
		if value == string(ModeNewName) {
			v.modeSelect.SetSelected(label)
		}
	}
	require.False(t, v.padEntry.Disabled())
}

func TestBuildPreviewItemsGroupsByFolder(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"b/x2.bmp":  "",
		"b/x10.bmp": "",
		"a/y1.bmp":  "",
	})

	opts := Options{
		Folder:         root,
		Pattern:        "*.bmp",
		Mode:           ModeNewName,
		IndexBase:      1,
		PadWidth:       2,
		IndexMul:       1,
		Prefix:         "img",
		ResetPerFolder: true,
		ApplySelection: true,
		SelDivision:    2,
	}
	planOpts := opts
	planOpts.ApplySelection = false
	pairs, err := BuildPlan(planOpts)
	require.NoError(t, err)

	items := buildPreviewItems(opts, pairs)
	require.Len(t, items, 5) // 2 group headers + 3 files

	require.True(t, items[0].group)
	require.Equal(t, "a", items[0].relDir)
	require.Equal(t, "y1.bmp", items[1].oldName)
	require.Equal(t, "img_01.bmp", items[1].newName)

	require.True(t, items[2].group)
	require.Equal(t, "b", items[2].relDir)
	// natural order keeps x2 before x10
	require.Equal(t, "x2.bmp", items[3].oldName)
	require.Equal(t, "x10.bmp", items[4].oldName)

	// (index - 0) % 2 == 0 highlights even indexes; both folders restart at 1
	require.False(t, items[1].selected)
	require.False(t, items[3].selected)
	require.True(t, items[4].selected)
}
