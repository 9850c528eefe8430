package format

import (
	"fmt"
	"math"
	"strings"

	"printsplit/internal/model"
)

var quadrantNames = []string{"Top-left", "Top-right", "Bottom-left", "Bottom-right"}

// roundCm rounds a centimeter value to one decimal place in decimal terms.
// Plain %.1f rounds the binary representation, so 29.7/2 (14.8499...) would
// show as 14.8 instead of 14.9; the epsilon lifts such values over the
// boundary before rounding.
func roundCm(v float64) float64 {
	return math.Round(v*10+0.5e-9) / 10
}

// FormatDimensions renders a physical size with one-decimal centimeter values,
// e.g. "21.0 x 29.7 cm". Rounding happens only here; stored values keep full
// precision.
func FormatDimensions(d model.Dimensions) string {
	return fmt.Sprintf("%.1f x %.1f cm", roundCm(d.Width), roundCm(d.Height))
}

func quadrantName(index int) string {
	if index >= 1 && index <= len(quadrantNames) {
		return quadrantNames[index-1]
	}
	return fmt.Sprintf("Section %d", index)
}

// FormatSectionCaption produces a short caption for one section,
// e.g. "Top-left: 10.5 x 14.9 cm".
func FormatSectionCaption(s model.Section) string {
	return fmt.Sprintf("%s: %s", quadrantName(s.Index), FormatDimensions(s.Physical))
}

// FormatResult produces a human-readable summary of a split.
func FormatResult(r *model.SplitResult) string {
	var b strings.Builder

	b.WriteString("=== Split Result ===\n")
	b.WriteString(fmt.Sprintf("Source:          %d x %d px\n", r.SourceWidth, r.SourceHeight))
	b.WriteString(fmt.Sprintf("Output size:     %s\n", FormatDimensions(r.Output)))
	b.WriteString(fmt.Sprintf("Section size:    %s\n", FormatDimensions(r.SectionSize())))

	b.WriteString("\n--- Sections ---\n")
	for _, s := range r.Sections {
		b.WriteString(fmt.Sprintf("%-13s %4d x %-4d px  %7d bytes\n",
			quadrantName(s.Index)+":", s.Rect.Dx(), s.Rect.Dy(), len(s.PNG)))
	}
	b.WriteString("====================")

	return b.String()
}
