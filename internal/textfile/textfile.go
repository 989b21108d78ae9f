// Package textfile stores a document as a UTF-8 file on disk.
package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when a file does not decode as UTF-8.
var ErrInvalidUTF8 = errors.New("textfile: invalid UTF-8")

// File is an editor.Source and editor.Sink for one path. Every rune is one
// character; line breaks are read and written as they are.
type File struct {
	Path string
	// Perm is used when the file is created. Zero means 0644.
	Perm os.FileMode
}

func New(path string) *File { return &File{Path: path} }

// LoadCharacters reads the whole file.
func (f *File) LoadCharacters(ctx context.Context) ([]rune, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("read %s: %w", f.Path, ErrInvalidUTF8)
	}
	return []rune(string(data)), nil
}

// SaveCharacters writes chars to a temporary file next to Path and renames it
// over Path, so a failed save leaves the old contents in place.
func (f *File) SaveCharacters(ctx context.Context, chars iter.Seq[rune]) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.Path), "."+filepath.Base(f.Path)+".*")
	if err != nil {
		return fmt.Errorf("save %s: %w", f.Path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	for ch := range chars {
		if _, err := w.WriteRune(ch); err != nil {
			return fmt.Errorf("save %s: %w", f.Path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("save %s: %w", f.Path, err)
	}
	if err := tmp.Chmod(f.perm()); err != nil {
		return fmt.Errorf("save %s: %w", f.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", f.Path, err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("save %s: %w", f.Path, err)
	}
	return nil
}

func (f *File) perm() os.FileMode {
	if f.Perm == 0 {
		return 0o644
	}
	return f.Perm
}
