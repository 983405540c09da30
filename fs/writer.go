// Package fs provides file-based storage for the generated guide.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NorthernWidget/guidedoc"
	"github.com/cespare/xxhash/v2"
)

// ContentHash returns the xxhash64 of content as lowercase hex.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// Ensure Writer implements guidedoc.GuideWriter at compile time.
var _ guidedoc.GuideWriter = (*Writer)(nil)

// Writer writes the guide to a single file.
// The parent directory must already exist; it is never created.
type Writer struct {
	path string
}

// NewWriter creates a new Writer for the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the destination file path.
func (w *Writer) Path() string {
	return w.path
}

// WriteGuide writes the guide content followed by its trailer.
// The content goes to a temporary file next to the destination which is then
// renamed over it, so readers never observe a partial guide. If the file
// already holds identical content it is left untouched.
func (w *Writer) WriteGuide(ctx context.Context, guide *guidedoc.Guide) (*guidedoc.WriteResult, error) {
	if err := guide.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content := guide.Content()
	result := &guidedoc.WriteResult{
		Path:  w.path,
		Bytes: len(content),
		Hash:  ContentHash(content),
	}

	dir := filepath.Dir(w.path)
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, guidedoc.Errorf(guidedoc.ENOTFOUND, "output directory %q does not exist", dir)
	} else if err != nil {
		return nil, err
	} else if !info.IsDir() {
		return nil, guidedoc.Errorf(guidedoc.EINVALID, "output directory %q is not a directory", dir)
	}

	if existing, err := os.ReadFile(w.path); err == nil {
		if len(existing) == len(content) && fmt.Sprintf("%x", xxhash.Sum64(existing)) == result.Hash {
			return result, nil
		}
	}

	if err := writeFileAtomic(w.path, []byte(content)); err != nil {
		return nil, err
	}
	result.Changed = true

	return result, nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
