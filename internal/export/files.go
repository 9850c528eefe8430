package export

import (
	"fmt"
	"os"
	"path/filepath"

	"printsplit/internal/model"
)

// WriteSections writes each section's PNG bytes to dir using the deterministic
// section names, creating dir if needed. Returns the written paths in section
// order. With zero sections nothing is written.
func WriteSections(dir, base string, sections []model.Section) ([]string, error) {
	if len(sections) == 0 {
		return nil, nil
	}

	if err := EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make([]string, 0, len(sections))
	for _, s := range sections {
		path := filepath.Join(dir, SectionFileName(base, s.Index))
		if err := os.WriteFile(path, s.PNG, 0644); err != nil {
			return nil, fmt.Errorf("write section %d: %w", s.Index, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
