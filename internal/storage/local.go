package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// localStorage reads templates from a directory on the local filesystem.
type localStorage struct {
	dir string
}

// NewLocal creates a TemplateStore backed by dir.
func NewLocal(dir string) TemplateStore {
	return &localStorage{dir: dir}
}

// Read loads the template. Only the base name is used, so names cannot escape dir.
func (l *localStorage) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(l.dir, filepath.Base(name))
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	return b, nil
}

// Ping checks that the template directory exists.
func (l *localStorage) Ping(ctx context.Context) error {
	st, err := os.Stat(l.dir)
	if err != nil {
		return fmt.Errorf("template dir: %w", err)
	}
	if !st.IsDir() {
		return fmt.Errorf("template dir %s is not a directory", l.dir)
	}
	return nil
}
