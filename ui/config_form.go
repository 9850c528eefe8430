package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"printsplit/internal/model"
	"printsplit/internal/paper"
)

// ConfigForm holds the GUI form fields for the output print size.
type ConfigForm struct {
	formatSelect     *widget.Select
	orientationRadio *widget.RadioGroup
	widthEntry       *widget.Entry
	heightEntry      *widget.Entry
	form             *fyne.Container
}

// NewConfigForm creates a new configuration form with default values.
func NewConfigForm() *ConfigForm {
	cf := &ConfigForm{}

	cf.widthEntry = widget.NewEntry()
	cf.widthEntry.SetText("20")
	cf.widthEntry.SetPlaceHolder("width in cm")

	cf.heightEntry = widget.NewEntry()
	cf.heightEntry.SetText("20")
	cf.heightEntry.SetPlaceHolder("height in cm")

	cf.formatSelect = widget.NewSelect(paper.FormatNames, func(selected string) {
		// Custom size entries only make sense for the Custom format.
		if selected == "Custom" {
			cf.widthEntry.Enable()
			cf.heightEntry.Enable()
		} else {
			cf.widthEntry.Disable()
			cf.heightEntry.Disable()
		}
	})
	cf.formatSelect.SetSelected("A4")

	cf.orientationRadio = widget.NewRadioGroup([]string{"Portrait", "Landscape"}, nil)
	cf.orientationRadio.SetSelected("Portrait")
	cf.orientationRadio.Horizontal = true

	cf.form = container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Paper Format", cf.formatSelect),
			widget.NewFormItem("Orientation", cf.orientationRadio),
			widget.NewFormItem("Custom Width", cf.widthEntry),
			widget.NewFormItem("Custom Height", cf.heightEntry),
		),
	)

	return cf
}

// Container returns the form's Fyne container.
func (cf *ConfigForm) Container() *fyne.Container {
	return cf.form
}

// LoadPreferences restores form values from persistent preferences.
func (cf *ConfigForm) LoadPreferences(prefs fyne.Preferences) {
	if v := prefs.String("config.format"); v != "" {
		cf.formatSelect.SetSelected(v)
	}
	if v := prefs.String("config.orientation"); v != "" {
		cf.orientationRadio.SetSelected(v)
	}
	if v := prefs.String("config.custom_width"); v != "" {
		cf.widthEntry.SetText(v)
	}
	if v := prefs.String("config.custom_height"); v != "" {
		cf.heightEntry.SetText(v)
	}
}

// SavePreferences persists form values to preferences.
func (cf *ConfigForm) SavePreferences(prefs fyne.Preferences) {
	prefs.SetString("config.format", cf.formatSelect.Selected)
	prefs.SetString("config.orientation", cf.orientationRadio.Selected)
	prefs.SetString("config.custom_width", cf.widthEntry.Text)
	prefs.SetString("config.custom_height", cf.heightEntry.Text)
}

// OutputDimensions resolves the effective output size from the current form
// values. Invalid custom entries produce a validation error; other formats
// always succeed.
func (cf *ConfigForm) OutputDimensions() (model.Dimensions, error) {
	f, err := paper.ParseFormat(cf.formatSelect.Selected)
	if err != nil {
		return model.Dimensions{}, err
	}
	o, err := paper.ParseOrientation(cf.orientationRadio.Selected)
	if err != nil {
		return model.Dimensions{}, err
	}

	custom := paper.DefaultCustom
	if f == paper.Custom {
		w, err := parseDimension(cf.widthEntry.Text, "custom width")
		if err != nil {
			return model.Dimensions{}, err
		}
		h, err := parseDimension(cf.heightEntry.Text, "custom height")
		if err != nil {
			return model.Dimensions{}, err
		}
		custom = model.Dimensions{Width: w, Height: h}
	}

	return paper.Resolve(f, o, custom)
}
