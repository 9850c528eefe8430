package export

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBaseName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.JPG", "photo"},
		{"photo.png", "photo"},
		{"archive.tar.gz", "archive"},
		{"noextension", "noextension"},
		{"/some/dir/picture.tiff", "picture"},
		{"dir.with.dots/picture.tiff", "picture"},
		{".hidden", "image"},
		{"", "image"},
	}

	for _, tt := range tests {
		if got := BaseName(tt.in); got != tt.want {
			t.Errorf("BaseName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSectionFileName(t *testing.T) {
	tests := []struct {
		base  string
		index int
		want  string
	}{
		{"photo", 2, "photo_section_2.png"},
		{"photo", 1, "photo_section_1.png"},
		{"scan", 4, "scan_section_4.png"},
	}

	for _, tt := range tests {
		if got := SectionFileName(tt.base, tt.index); got != tt.want {
			t.Errorf("SectionFileName(%q, %d) = %q, want %q", tt.base, tt.index, got, tt.want)
		}
	}
}

// Full chain from original file name to section name, per the naming contract.
func TestSectionFileName_FromOriginal(t *testing.T) {
	got := SectionFileName(BaseName("photo.JPG"), 2)
	if got != "photo_section_2.png" {
		t.Errorf("got %q, want %q", got, "photo_section_2.png")
	}
}

func TestArchiveFileName(t *testing.T) {
	if got := ArchiveFileName("photo"); got != "photo_sections.zip" {
		t.Errorf("ArchiveFileName() = %q, want %q", got, "photo_sections.zip")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	if err := EnsureDir(sub); err != nil {
		t.Fatalf("EnsureDir() error: %v", err)
	}
	info, err := os.Stat(sub)
	if err != nil {
		t.Fatalf("directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}

	// Existing dir is a no-op
	if err := EnsureDir(sub); err != nil {
		t.Fatalf("EnsureDir() on existing dir error: %v", err)
	}
}
