package cli

import (
	"os"
	"testing"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"printsplit"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestParseFlags_NoArgsMeansGUI(t *testing.T) {
	withArgs(t)
	cfg, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config for GUI mode, got %+v", cfg)
	}
}

func TestParseFlags_Help(t *testing.T) {
	for _, arg := range []string{"help", "--help", "-h"} {
		withArgs(t, arg)
		cfg, err := ParseFlags()
		if err != nil {
			t.Fatalf("ParseFlags(%s) error: %v", arg, err)
		}
		if cfg != nil {
			t.Errorf("ParseFlags(%s): expected nil config", arg)
		}
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	withArgs(t, "-in", "photo.jpg")
	cfg, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	if cfg.InputPath != "photo.jpg" {
		t.Errorf("InputPath = %q", cfg.InputPath)
	}
	if cfg.Format != "a4" || cfg.Orientation != "portrait" {
		t.Errorf("defaults = %q/%q, want a4/portrait", cfg.Format, cfg.Orientation)
	}
	if cfg.CustomWidth != 20 || cfg.CustomHeight != 20 {
		t.Errorf("custom defaults = %gx%g, want 20x20", cfg.CustomWidth, cfg.CustomHeight)
	}
	if cfg.OutDir != "." {
		t.Errorf("OutDir = %q, want .", cfg.OutDir)
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	withArgs(t,
		"-in", "scan.tiff",
		"-f", "custom",
		"-orientation", "landscape",
		"-W", "15",
		"-H", "10",
		"-o", "out",
		"-zip", "scan.zip",
		"-v",
	)
	cfg, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	if cfg.Format != "custom" || cfg.Orientation != "landscape" {
		t.Errorf("format/orientation = %q/%q", cfg.Format, cfg.Orientation)
	}
	if cfg.CustomWidth != 15 || cfg.CustomHeight != 10 {
		t.Errorf("custom = %gx%g, want 15x10", cfg.CustomWidth, cfg.CustomHeight)
	}
	if cfg.OutDir != "out" || cfg.ZipPath != "scan.zip" || !cfg.Verbose {
		t.Errorf("output flags = %q/%q/%v", cfg.OutDir, cfg.ZipPath, cfg.Verbose)
	}
}

func TestParseFlags_MissingInput(t *testing.T) {
	withArgs(t, "-f", "a3")
	if _, err := ParseFlags(); err == nil {
		t.Error("expected error when -in is missing")
	}
}

func TestParseFlags_NonNumericWidth(t *testing.T) {
	withArgs(t, "-in", "photo.jpg", "-f", "custom", "-W", "abc")
	if _, err := ParseFlags(); err == nil {
		t.Error("expected error for non-numeric width")
	}
}
