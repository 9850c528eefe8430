package split

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"printsplit/internal/model"
)

var (
	// ErrNoImage means Partition was called before an image was loaded.
	ErrNoImage = errors.New("no image loaded")
	// ErrEncode means a cropped section could not be re-encoded as PNG.
	ErrEncode = errors.New("section encoding failed")
)

// Partition splits img into four quadrants in fixed order (top-left,
// top-right, bottom-left, bottom-right) and re-encodes each as PNG.
// Each section carries half the output dimensions as its physical size.
// With odd pixel dimensions the right/bottom quadrants take the extra pixel;
// the regions always tile the source exactly.
// All-or-nothing: on any error no sections are returned.
func Partition(img image.Image, output model.Dimensions) (*model.SplitResult, error) {
	if img == nil {
		return nil, ErrNoImage
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: image has no pixels", ErrNoImage)
	}

	// Quadrant boundaries relative to bounds min, so images with a non-zero
	// origin split correctly.
	midX := b.Min.X + w/2
	midY := b.Min.Y + h/2
	rects := []image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, midX, midY), // top-left
		image.Rect(midX, b.Min.Y, b.Max.X, midY), // top-right
		image.Rect(b.Min.X, midY, midX, b.Max.Y), // bottom-left
		image.Rect(midX, midY, b.Max.X, b.Max.Y), // bottom-right
	}

	half := output.Half()
	sections := make([]model.Section, 0, len(rects))
	for i, r := range rects {
		cropped := imaging.Crop(img, r)

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, cropped, imaging.PNG); err != nil {
			return nil, fmt.Errorf("%w: section %d: %v", ErrEncode, i+1, err)
		}

		sections = append(sections, model.Section{
			Index:    i + 1,
			PNG:      buf.Bytes(),
			Rect:     r.Sub(b.Min), // normalized to (0,0) origin
			Physical: half,
		})
	}

	return &model.SplitResult{
		Sections:     sections,
		Output:       output,
		SourceWidth:  w,
		SourceHeight: h,
	}, nil
}
