package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App) fyne.Window {
	win := app.NewWindow("Image Print Splitter")
	win.Resize(NewWindowSize())

	configForm := NewConfigForm()
	previewView := NewPreviewView()
	controls := NewControls(configForm, previewView)

	prefs := app.Preferences()
	configForm.LoadPreferences(prefs)

	topPanel := container.NewVBox(
		configForm.Container(),
		controls.Container(),
	)

	content := container.NewBorder(topPanel, nil, nil, nil, previewView.Container())
	win.SetContent(content)

	// Dropping an image file anywhere on the window loads it.
	win.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if len(uris) == 0 {
			return
		}
		controls.LoadFromPath(uris[0].Path())
	})

	win.SetCloseIntercept(func() {
		configForm.SavePreferences(prefs)
		win.Close()
	})

	return win
}
