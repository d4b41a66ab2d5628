package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ExportArchive keeps rendered schedule exports on local disk so completed
// export jobs can be downloaded later without re-rendering.
type ExportArchive struct {
	baseDir string
}

// NewExportArchive ensures the archive directory exists.
func NewExportArchive(baseDir string) (*ExportArchive, error) {
	if baseDir == "" {
		baseDir = "./exports"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create export archive: %w", err)
	}
	return &ExportArchive{baseDir: baseDir}, nil
}

// Save writes a rendered export under the archive and returns its relative name.
func (a *ExportArchive) Save(name string, payload []byte) (string, error) {
	path := a.resolve(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("prepare archive directory: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return name, nil
}

// Read returns the archived payload for a previously saved export.
func (a *ExportArchive) Read(name string) ([]byte, error) {
	payload, err := os.ReadFile(a.resolve(name))
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	return payload, nil
}

// Remove deletes an archived export. Missing files are not an error.
func (a *ExportArchive) Remove(name string) error {
	if err := os.Remove(a.resolve(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove export: %w", err)
	}
	return nil
}

// Sweep deletes exports older than maxAge and reports what was removed.
func (a *ExportArchive) Sweep(maxAge time.Duration) ([]string, error) {
	cutoff := time.Now().Add(-maxAge)
	removed := make([]string, 0)
	err := filepath.WalkDir(a.baseDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.ModTime().After(cutoff) {
			return nil
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		rel, err := filepath.Rel(a.baseDir, path)
		if err != nil {
			rel = path
		}
		removed = append(removed, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sweep export archive: %w", err)
	}
	return removed, nil
}

func (a *ExportArchive) resolve(name string) string {
	return filepath.Join(a.baseDir, filepath.Clean("/"+name))
}
