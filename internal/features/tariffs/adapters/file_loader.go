package adapters

import (
	"context"
	"fmt"
	"os"

	"freight-quoter/internal/features/tariffs/ports"
)

// FileLoader reads the catalog sheet from a local CSV export.
type FileLoader struct {
	path string
}

// NewFileLoader creates a FileLoader for path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load reads and parses the file.
func (l *FileLoader) Load(ctx context.Context) (*ports.LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", l.path, err)
	}
	defer f.Close()

	return ParseCSV(f)
}

// Source returns the file path.
func (l *FileLoader) Source() string {
	return l.path
}
