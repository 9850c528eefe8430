package paper

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"printsplit/internal/model"
)

// Format identifies a paper format for the printed output.
type Format int

const (
	A4 Format = iota
	A3
	A2
	Custom
)

// Orientation selects portrait or landscape output.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

// ErrInvalidDimension is returned when a custom dimension is not a positive
// finite number.
var ErrInvalidDimension = errors.New("custom dimensions must be positive numbers")

// Base sizes in centimeters, portrait orientation (ISO 216).
var baseSizes = map[Format]model.Dimensions{
	A4: {Width: 21, Height: 29.7},
	A3: {Width: 29.7, Height: 42},
	A2: {Width: 42, Height: 59.4},
}

// DefaultCustom is the custom size used before the user enters one.
var DefaultCustom = model.Dimensions{Width: 20, Height: 20}

// FormatNames lists the selectable formats in display order.
var FormatNames = []string{"A4", "A3", "A2", "Custom"}

func (f Format) String() string {
	switch f {
	case A4:
		return "A4"
	case A3:
		return "A3"
	case A2:
		return "A2"
	case Custom:
		return "Custom"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

func (o Orientation) String() string {
	if o == Landscape {
		return "Landscape"
	}
	return "Portrait"
}

// ParseFormat converts user input ("a4", "A3", "custom") into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a4":
		return A4, nil
	case "a3":
		return A3, nil
	case "a2":
		return A2, nil
	case "custom":
		return Custom, nil
	}
	return A4, fmt.Errorf("unknown paper format %q (want a4, a3, a2 or custom)", s)
}

// ParseOrientation converts user input into an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "portrait", "":
		return Portrait, nil
	case "landscape":
		return Landscape, nil
	}
	return Portrait, fmt.Errorf("unknown orientation %q (want portrait or landscape)", s)
}

// Resolve returns the effective output dimensions for the given format and
// orientation. For Custom the supplied dimensions are used and validated;
// for the ISO formats the custom argument is ignored.
// Pure: no side effects, same inputs always give the same result.
func Resolve(f Format, o Orientation, custom model.Dimensions) (model.Dimensions, error) {
	base, ok := baseSizes[f]
	if !ok {
		if f != Custom {
			return model.Dimensions{}, fmt.Errorf("unknown paper format %v", f)
		}
		if !custom.Positive() || math.IsInf(custom.Width, 0) || math.IsInf(custom.Height, 0) ||
			math.IsNaN(custom.Width) || math.IsNaN(custom.Height) {
			return model.Dimensions{}, fmt.Errorf("%w: got %gx%g", ErrInvalidDimension, custom.Width, custom.Height)
		}
		base = custom
	}
	if o == Landscape {
		return base.Swapped(), nil
	}
	return base, nil
}
