package cli

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config and prints help if no arguments or --help is provided.
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, nil
	}

	cfg := &RunnerConfig{
		Format:       "a4",
		Orientation:  "portrait",
		CustomWidth:  20,
		CustomHeight: 20,
		OutDir:       ".",
	}

	fs := flag.NewFlagSet("printsplit", flag.ContinueOnError)

	fs.StringVar(&cfg.InputPath, "in", "", "Input image file (JPEG, PNG or TIFF)")
	fs.StringVar(&cfg.InputPath, "input", "", "Input image file (JPEG, PNG or TIFF)")
	fs.StringVar(&cfg.Format, "f", cfg.Format, "Paper format: a4, a3, a2 or custom")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Paper format: a4, a3, a2 or custom")
	fs.StringVar(&cfg.Orientation, "orientation", cfg.Orientation, "Orientation: portrait or landscape")
	fs.Float64Var(&cfg.CustomWidth, "W", cfg.CustomWidth, "Custom width in cm (format=custom)")
	fs.Float64Var(&cfg.CustomWidth, "width", cfg.CustomWidth, "Custom width in cm (format=custom)")
	fs.Float64Var(&cfg.CustomHeight, "H", cfg.CustomHeight, "Custom height in cm (format=custom)")
	fs.Float64Var(&cfg.CustomHeight, "height", cfg.CustomHeight, "Custom height in cm (format=custom)")
	fs.StringVar(&cfg.OutDir, "o", cfg.OutDir, "Output directory for section PNGs")
	fs.StringVar(&cfg.OutDir, "outdir", cfg.OutDir, "Output directory for section PNGs")
	fs.StringVar(&cfg.ZipPath, "zip", "", "Also write a zip bundle to this path")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	if cfg.InputPath == "" {
		fmt.Fprintf(os.Stderr, "Error: must provide -in <image> to split a file\n\n")
		PrintUsage()
		return nil, fmt.Errorf("missing required flags")
	}

	return cfg, nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Image Print Splitter

Usage: printsplit [flags]
       printsplit help    (show this message)
       printsplit         (no flags: open the GUI)

Splits one image into four quadrant PNGs, each tagged with its physical
print size for the chosen paper format.

FLAGS:
  -in, -input <file>       Input image: JPEG, PNG or TIFF (required)
  -f, -format <name>       Paper format: a4, a3, a2, custom (default: a4)
  -orientation <name>      portrait or landscape (default: portrait)
  -W, -width <cm>          Custom width in cm, format=custom only (default: 20)
  -H, -height <cm>         Custom height in cm, format=custom only (default: 20)
  -o, -outdir <dir>        Output directory for section PNGs (default: .)
  -zip <file>              Also write all sections as a zip bundle
  -v, -verbose             Verbose output

EXAMPLES:
  # Split for A4 portrait sheets, sections next to the input
  printsplit -in photo.jpg

  # A3 landscape, sections into ./out plus a zip bundle
  printsplit -in scan.tiff -f a3 -orientation landscape -o out -zip scan_sections.zip

  # Custom 15x10 cm output
  printsplit -in photo.png -f custom -W 15 -H 10

`)
}
