package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BaseName derives the export base from an original file name: the directory
// part is dropped and everything from the first dot on is stripped, so
// "photo.JPG" and "photo.tar.gz" both give "photo".
func BaseName(fileName string) string {
	name := filepath.Base(fileName)
	if i := strings.Index(name, "."); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return "image"
	}
	return name
}

// SectionFileName returns the deterministic name for one section,
// "<base>_section_<index>.png". Index is 1-based.
func SectionFileName(base string, index int) string {
	return fmt.Sprintf("%s_section_%d.png", base, index)
}

// ArchiveFileName returns the default name for the zip bundle.
func ArchiveFileName(base string) string {
	return base + "_sections.zip"
}

// EnsureDir creates dir (equivalent to mkdir -p) with mode 0755.
// It is a no-op if the directory already exists.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
