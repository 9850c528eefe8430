package model

import "image"

// Dimensions holds a physical print size in centimeters.
type Dimensions struct {
	Width  float64
	Height float64
}

// Half returns the per-section physical size (half width, half height).
func (d Dimensions) Half() Dimensions {
	return Dimensions{Width: d.Width / 2, Height: d.Height / 2}
}

// Swapped returns the dimensions with width and height exchanged.
func (d Dimensions) Swapped() Dimensions {
	return Dimensions{Width: d.Height, Height: d.Width}
}

// Positive reports whether both width and height are greater than zero.
func (d Dimensions) Positive() bool {
	return d.Width > 0 && d.Height > 0
}

// Section holds one quadrant of a split image.
type Section struct {
	Index    int             // 1-based, fixed order: TL, TR, BL, BR
	PNG      []byte          // re-encoded PNG bytes of the cropped region
	Rect     image.Rectangle // pixel region in the source image
	Physical Dimensions      // intended print size of this section
}

// SplitResult holds the outcome of partitioning one source image.
type SplitResult struct {
	Sections     []Section // exactly four, in fixed quadrant order
	Output       Dimensions
	SourceWidth  int
	SourceHeight int
}

// SectionSize returns the physical size shared by all four sections.
func (r *SplitResult) SectionSize() Dimensions {
	return r.Output.Half()
}

// TotalBytes returns the summed size of all encoded sections.
func (r *SplitResult) TotalBytes() int {
	n := 0
	for _, s := range r.Sections {
		n += len(s.PNG)
	}
	return n
}
