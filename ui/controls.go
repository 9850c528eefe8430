package ui

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"printsplit/internal/export"
	"printsplit/internal/format"
	"printsplit/internal/model"
	"printsplit/internal/split"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".tif", ".tiff"}

// Controls manages the Open/Split/Export buttons and the current image state.
// The loaded image and its sections are replaced wholesale on each new load
// or re-split.
type Controls struct {
	mu       sync.Mutex
	source   image.Image
	baseName string
	result   *model.SplitResult

	openBtn      *widget.Button
	splitBtn     *widget.Button
	exportBtn    *widget.Button
	exportZipBtn *widget.Button
	statusLabel  *widget.Label

	configForm  *ConfigForm
	previewView *PreviewView

	container *fyne.Container
}

// NewControls creates the control buttons wired to the given views.
func NewControls(cf *ConfigForm, pv *PreviewView) *Controls {
	c := &Controls{
		configForm:  cf,
		previewView: pv,
	}

	c.openBtn = widget.NewButton("Open Image", c.onOpen)
	c.splitBtn = widget.NewButton("Split", c.onSplit)
	c.splitBtn.Disable()
	c.exportBtn = widget.NewButton("Export PNGs", c.onExportSections)
	c.exportBtn.Disable()
	c.exportZipBtn = widget.NewButton("Export ZIP", c.onExportArchive)
	c.exportZipBtn.Disable()

	c.statusLabel = widget.NewLabel("Open or drop an image to begin.")
	c.statusLabel.Wrapping = fyne.TextWrapWord

	c.container = container.NewVBox(
		container.NewHBox(c.openBtn, c.splitBtn, c.exportBtn, c.exportZipBtn),
		c.statusLabel,
	)
	return c
}

// Container returns the controls container.
func (c *Controls) Container() *fyne.Container {
	return c.container
}

func (c *Controls) window() fyne.Window {
	wins := fyne.CurrentApp().Driver().AllWindows()
	if len(wins) == 0 {
		return nil
	}
	return wins[0]
}

func (c *Controls) setStatus(msg string) {
	fyne.Do(func() {
		c.statusLabel.SetText(msg)
	})
}

func (c *Controls) showError(err error) {
	c.setStatus(fmt.Sprintf("Error: %v", err))
	if win := c.window(); win != nil {
		dialog.ShowError(err, win)
	}
}

func (c *Controls) onOpen() {
	win := c.window()
	if win == nil {
		return
	}

	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		c.LoadFrom(reader, reader.URI().Name())
	}, win)
	fileDialog.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	fileDialog.Show()
}

// LoadFrom reads and decodes an image from r. On failure the previously
// loaded image and sections stay untouched.
func (c *Controls) LoadFrom(r io.Reader, name string) {
	img, err := split.Load(r)
	if err != nil {
		c.showError(err)
		return
	}

	b := img.Bounds()

	c.mu.Lock()
	c.source = img
	c.baseName = export.BaseName(name)
	c.result = nil
	c.mu.Unlock()

	c.previewView.Clear()
	fyne.Do(func() {
		c.splitBtn.Enable()
		c.exportBtn.Disable()
		c.exportZipBtn.Disable()
	})
	c.setStatus(fmt.Sprintf("Loaded %s (%d x %d px). Pick a paper size and split.", name, b.Dx(), b.Dy()))
}

// LoadFromPath loads an image from a filesystem path (used by drag-and-drop).
func (c *Controls) LoadFromPath(path string) {
	f, err := os.Open(path)
	if err != nil {
		c.showError(fmt.Errorf("open %s: %w", path, err))
		return
	}
	defer f.Close()
	c.LoadFrom(f, path)
}

func (c *Controls) onSplit() {
	c.mu.Lock()
	img := c.source
	c.mu.Unlock()

	if img == nil {
		c.setStatus("No image loaded.")
		return
	}

	dims, err := c.configForm.OutputDimensions()
	if err != nil {
		c.showError(err)
		return
	}

	result, err := split.Partition(img, dims)
	if err != nil {
		if errors.Is(err, split.ErrEncode) {
			c.showError(fmt.Errorf("image backend unavailable: %w", err))
		} else {
			c.showError(err)
		}
		return
	}

	c.mu.Lock()
	c.result = result
	c.mu.Unlock()

	c.previewView.SetResult(result)
	fyne.Do(func() {
		c.exportBtn.Enable()
		c.exportZipBtn.Enable()
	})
	c.setStatus(fmt.Sprintf("Split into 4 sections of %s each.",
		format.FormatDimensions(result.SectionSize())))
}

// currentSections returns the computed sections, or nil when nothing has been
// split yet.
func (c *Controls) currentSections() ([]model.Section, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return nil, ""
	}
	return c.result.Sections, c.baseName
}

func (c *Controls) onExportSections() {
	sections, base := c.currentSections()
	if len(sections) == 0 {
		c.setStatus("No sections to export.")
		return
	}

	win := c.window()
	if win == nil {
		return
	}

	dialog.ShowFolderOpen(func(list fyne.ListableURI, err error) {
		if err != nil || list == nil {
			return
		}

		paths, exportErr := export.WriteSections(list.Path(), base, sections)
		if exportErr != nil {
			c.showError(exportErr)
			return
		}
		c.setStatus(fmt.Sprintf("Exported %d sections to %s", len(paths), list.Path()))
	}, win)
}

func (c *Controls) onExportArchive() {
	sections, base := c.currentSections()
	if len(sections) == 0 {
		c.setStatus("No sections to export.")
		return
	}

	win := c.window()
	if win == nil {
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if exportErr := export.WriteArchive(path, base, sections); exportErr != nil {
			c.showError(exportErr)
			return
		}
		c.setStatus(fmt.Sprintf("Exported archive to %s", path))
	}, win)
	saveDialog.SetFileName(export.ArchiveFileName(base))
	saveDialog.Show()
}
