package export

import (
	"archive/zip"
	"fmt"
	"os"

	"printsplit/internal/model"
)

// WriteArchive writes a zip bundle at path containing one named PNG entry per
// section. With zero sections it performs no action and creates no file.
func WriteArchive(path, base string, sections []model.Section) error {
	if len(sections) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, s := range sections {
		w, err := zw.Create(SectionFileName(base, s.Index))
		if err != nil {
			zw.Close()
			return fmt.Errorf("add archive entry %d: %w", s.Index, err)
		}
		if _, err := w.Write(s.PNG); err != nil {
			zw.Close()
			return fmt.Errorf("write archive entry %d: %w", s.Index, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	return nil
}
