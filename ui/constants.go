package ui

import "fyne.io/fyne/v2"

// Window dimensions
const (
	WindowWidth  = 760
	WindowHeight = 640
)

// Preview cell dimensions
const (
	PreviewCellMinWidth  = 180
	PreviewCellMinHeight = 140
)

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}

// NewPreviewCellMinSize returns the minimum size for one preview quadrant
func NewPreviewCellMinSize() fyne.Size {
	return fyne.NewSize(PreviewCellMinWidth, PreviewCellMinHeight)
}
