package asset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileReader reads a file from local disk.
type FileReader struct {
	path string
}

func NewFileReader(path string) *FileReader {
	return &FileReader{path: path}
}

func (r *FileReader) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, r.path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, r.path, err)
	}
	return b, nil
}
