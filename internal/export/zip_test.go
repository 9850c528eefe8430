package export

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"printsplit/internal/model"
)

func testSections() []model.Section {
	sections := make([]model.Section, 4)
	for i := range sections {
		sections[i] = model.Section{
			Index: i + 1,
			PNG:   []byte{0x89, 'P', 'N', 'G', byte(i)},
		}
	}
	return sections
}

func TestWriteArchive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo_sections.zip")

	if err := WriteArchive(path, "photo", testSections()); err != nil {
		t.Fatalf("WriteArchive() error: %v", err)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer zr.Close()

	if len(zr.File) != 4 {
		t.Fatalf("archive has %d entries, want 4", len(zr.File))
	}

	wantNames := []string{
		"photo_section_1.png",
		"photo_section_2.png",
		"photo_section_3.png",
		"photo_section_4.png",
	}
	for i, f := range zr.File {
		if f.Name != wantNames[i] {
			t.Errorf("entry %d name = %q, want %q", i, f.Name, wantNames[i])
		}

		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %q: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read entry %q: %v", f.Name, err)
		}
		if !bytes.Equal(data, []byte{0x89, 'P', 'N', 'G', byte(i)}) {
			t.Errorf("entry %q bytes mismatch", f.Name)
		}
	}
}

// Zero sections: no action, no file.
func TestWriteArchive_NoSections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.zip")

	if err := WriteArchive(path, "photo", nil); err != nil {
		t.Fatalf("WriteArchive() error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no archive file, stat err = %v", err)
	}
}

func TestWriteSections(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "sections")

	paths, err := WriteSections(out, "photo", testSections())
	if err != nil {
		t.Fatalf("WriteSections() error: %v", err)
	}
	if len(paths) != 4 {
		t.Fatalf("got %d paths, want 4", len(paths))
	}

	for i, p := range paths {
		want := filepath.Join(out, SectionFileName("photo", i+1))
		if p != want {
			t.Errorf("path %d = %q, want %q", i, p, want)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("read %q: %v", p, err)
		}
		if len(data) != 5 {
			t.Errorf("file %q has %d bytes, want 5", p, len(data))
		}
	}
}

func TestWriteSections_NoSections(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "sections")

	paths, err := WriteSections(out, "photo", nil)
	if err != nil {
		t.Fatalf("WriteSections() error: %v", err)
	}
	if paths != nil {
		t.Errorf("expected no paths, got %v", paths)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("expected no output dir created, stat err = %v", err)
	}
}
