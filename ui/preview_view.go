package ui

import (
	"bytes"
	"image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"printsplit/internal/format"
	"printsplit/internal/model"
)

// PreviewView displays the four split sections in a 2x2 grid with their
// physical print sizes as captions.
type PreviewView struct {
	cells     [4]*previewCell
	grid      *fyne.Container
	container *fyne.Container
}

type previewCell struct {
	image   *canvas.Image
	caption *widget.Label
	box     *fyne.Container
}

func newPreviewCell() *previewCell {
	c := &previewCell{}

	c.image = &canvas.Image{FillMode: canvas.ImageFillContain}
	c.image.SetMinSize(NewPreviewCellMinSize())

	c.caption = widget.NewLabel("")
	c.caption.Alignment = fyne.TextAlignCenter

	c.box = container.NewBorder(nil, c.caption, nil, nil, c.image)
	return c
}

// NewPreviewView creates an empty preview grid.
func NewPreviewView() *PreviewView {
	pv := &PreviewView{}

	objects := make([]fyne.CanvasObject, 0, len(pv.cells))
	for i := range pv.cells {
		pv.cells[i] = newPreviewCell()
		objects = append(objects, pv.cells[i].box)
	}
	pv.grid = container.NewGridWithColumns(2, objects...)

	header := widget.NewLabelWithStyle("Sections", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	pv.container = container.NewBorder(header, nil, nil, nil, pv.grid)

	return pv
}

// Container returns the preview's container.
func (pv *PreviewView) Container() *fyne.Container {
	return pv.container
}

// SetResult replaces the displayed sections, safe to call from any goroutine.
// The previous preview is replaced wholesale.
func (pv *PreviewView) SetResult(result *model.SplitResult) {
	fyne.Do(func() {
		for i, cell := range pv.cells {
			if result == nil || i >= len(result.Sections) {
				cell.image.Image = nil
				cell.caption.SetText("")
				cell.image.Refresh()
				continue
			}

			s := result.Sections[i]
			img, err := png.Decode(bytes.NewReader(s.PNG))
			if err != nil {
				cell.image.Image = nil
				cell.caption.SetText("preview unavailable")
				cell.image.Refresh()
				continue
			}
			cell.image.Image = img
			cell.caption.SetText(format.FormatSectionCaption(s))
			cell.image.Refresh()
		}
	})
}

// Clear empties the preview, safe to call from any goroutine.
func (pv *PreviewView) Clear() {
	pv.SetResult(nil)
}
