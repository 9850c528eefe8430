package cli

import (
	"fmt"

	"printsplit/internal/export"
	"printsplit/internal/format"
	"printsplit/internal/model"
	"printsplit/internal/paper"
	"printsplit/internal/split"
)

// RunnerConfig holds all CLI options for a split run.
type RunnerConfig struct {
	InputPath string

	// Output size
	Format       string
	Orientation  string
	CustomWidth  float64
	CustomHeight float64

	// Output
	OutDir  string
	ZipPath string
	Verbose bool
}

// SplitRunner loads the input image, partitions it into four sections and
// writes them to the configured output directory (plus a zip bundle when
// requested).
func SplitRunner(cfg RunnerConfig) (*model.SplitResult, error) {
	f, err := paper.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	o, err := paper.ParseOrientation(cfg.Orientation)
	if err != nil {
		return nil, err
	}

	custom := model.Dimensions{Width: cfg.CustomWidth, Height: cfg.CustomHeight}
	dims, err := paper.Resolve(f, o, custom)
	if err != nil {
		return nil, err
	}

	img, err := split.LoadFile(cfg.InputPath)
	if err != nil {
		return nil, err
	}

	result, err := split.Partition(img, dims)
	if err != nil {
		return nil, err
	}

	base := export.BaseName(cfg.InputPath)

	paths, err := export.WriteSections(cfg.OutDir, base, result.Sections)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		for _, p := range paths {
			fmt.Printf("Wrote %s\n", p)
		}
	}

	if cfg.ZipPath != "" {
		if err := export.WriteArchive(cfg.ZipPath, base, result.Sections); err != nil {
			return result, fmt.Errorf("save archive: %w", err)
		}
		if cfg.Verbose {
			fmt.Printf("Wrote %s\n", cfg.ZipPath)
		}
	}

	return result, nil
}

// PrintResult prints a formatted split summary to stdout.
func PrintResult(result *model.SplitResult) {
	fmt.Println(format.FormatResult(result))
}
