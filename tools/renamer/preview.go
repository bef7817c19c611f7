package renamer

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"golang.org/x/image/draw"

	"github.com/skratchdot/open-golang/open"

	// decoders for the thumbnail pane
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// previewItem is one row of the scan preview: either a folder header or
// a planned rename.
type previewItem struct {
	group    bool
	relDir   string
	index    int
	oldName  string
	newName  string
	selected bool // kept by the selection rule
	path     string
}

// previewRow renders one previewItem with the new name accented and a
// soft highlight behind rows the selection rule keeps.
type previewRow struct {
	widget.BaseWidget
	bg      *canvas.Rectangle
	index   *canvas.Text
	name    *canvas.Text
	arrow   *canvas.Text
	newName *canvas.Text
}

func newPreviewRow() *previewRow {
	r := &previewRow{
		bg:      canvas.NewRectangle(color.Transparent),
		index:   canvas.NewText("", theme.PlaceHolderColor()),
		name:    canvas.NewText("", theme.ForegroundColor()),
		arrow:   canvas.NewText("  ->  ", theme.ForegroundColor()),
		newName: canvas.NewText("", color.NRGBA{R: 0, G: 120, B: 215, A: 255}),
	}
	r.ExtendBaseWidget(r)
	return r
}

func (r *previewRow) Set(item previewItem) {
	if item.group {
		r.bg.FillColor = color.Transparent
		r.index.Text = ""
		r.name.Text = item.relDir + "/"
		r.name.TextStyle = fyne.TextStyle{Bold: true}
		r.arrow.Hide()
		r.newName.Hide()
		r.Refresh()
		return
	}

	if item.selected {
		r.bg.FillColor = color.NRGBA{R: 255, G: 255, B: 200, A: 60}
	} else {
		r.bg.FillColor = color.Transparent
	}
	r.index.Text = fmt.Sprintf("%4d", item.index)
	r.name.Text = item.oldName
	r.name.TextStyle = fyne.TextStyle{}
	if item.oldName != item.newName && item.newName != "" {
		r.arrow.Show()
		r.newName.Show()
		r.newName.Text = item.newName
	} else {
		r.arrow.Hide()
		r.newName.Hide()
	}
	r.Refresh()
}

func (r *previewRow) CreateRenderer() fyne.WidgetRenderer {
	row := container.NewHBox(r.index, r.name, r.arrow, r.newName)
	return widget.NewSimpleRenderer(container.NewStack(r.bg, row))
}

// thumbnail previews the image file selected in the scan list, scaled to
// fit while keeping its aspect ratio.
type thumbnail struct {
	widget.BaseWidget
	mu   sync.RWMutex
	img  image.Image
	path string
	win  fyne.Window
}

func newThumbnail(win fyne.Window) *thumbnail {
	t := &thumbnail{win: win}
	t.ExtendBaseWidget(t)
	return t
}

func (t *thumbnail) SetImage(img image.Image, path string) {
	t.mu.Lock()
	t.img = img
	t.path = path
	t.mu.Unlock()
	t.Refresh()
}

func (t *thumbnail) Tapped(*fyne.PointEvent) {}

func (t *thumbnail) TappedSecondary(e *fyne.PointEvent) {
	t.mu.RLock()
	path := t.path
	t.mu.RUnlock()
	if path == "" || t.win == nil {
		return
	}

	show := fyne.NewMenuItem("Show in file browser", func() {
		if err := open.Run(path); err != nil {
			if err2 := open.Start(filepath.Dir(path)); err2 != nil {
				dialog.ShowError(err2, t.win)
			}
		}
	})
	copyPath := fyne.NewMenuItem("Copy path", func() {
		t.win.Clipboard().SetContent(path)
	})
	menu := fyne.NewMenu("", show, copyPath)
	widget.ShowPopUpMenuAtPosition(menu, t.win.Canvas(), e.AbsolutePosition)
}

func (t *thumbnail) CreateRenderer() fyne.WidgetRenderer {
	renderer := &thumbnailRenderer{thumb: t}
	renderer.raster = canvas.NewRaster(renderer.draw)
	return renderer
}

type thumbnailRenderer struct {
	thumb  *thumbnail
	raster *canvas.Raster
}

func (r *thumbnailRenderer) draw(w, h int) image.Image {
	r.thumb.mu.RLock()
	img := r.thumb.img
	r.thumb.mu.RUnlock()
	if img == nil || w < 1 || h < 1 {
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}

	srcSize := img.Bounds().Size()
	ratioSrc := float32(srcSize.X) / float32(srcSize.Y)
	ratioDst := float32(w) / float32(h)
	var newWidth, newHeight int
	if ratioSrc > ratioDst {
		newWidth = w
		newHeight = int(float32(w) / ratioSrc)
	} else {
		newHeight = h
		newWidth = int(float32(h) * ratioSrc)
	}
	if newWidth < 1 || newHeight < 1 {
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	x0 := (w - newWidth) / 2
	y0 := (h - newHeight) / 2
	draw.CatmullRom.Scale(dst, image.Rect(x0, y0, x0+newWidth, y0+newHeight), img, img.Bounds(), draw.Over, nil)
	return dst
}

func (r *thumbnailRenderer) Layout(size fyne.Size)        { r.raster.Resize(size) }
func (r *thumbnailRenderer) MinSize() fyne.Size           { return fyne.NewSize(120, 120) }
func (r *thumbnailRenderer) Refresh()                     { r.raster.Refresh() }
func (r *thumbnailRenderer) Objects() []fyne.CanvasObject { return []fyne.CanvasObject{r.raster} }
func (r *thumbnailRenderer) Destroy()                     {}

// loadImage decodes one image file for the thumbnail pane.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}
