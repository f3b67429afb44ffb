// Package fileio reads documents from disk and writes them back atomically.
package fileio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DefaultPerm is used for files that do not exist yet.
const DefaultPerm os.FileMode = 0o644

var ErrClosed = errors.New("file already closed")

// ReadFile returns the content of name.
func ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}
	return data, nil
}

// Sink creates files by writing a temporary sibling and renaming it over the
// destination when the writer is closed. Readers never observe a partially
// written document.
type Sink struct{}

// Create opens a writer for name. The destination directory must exist.
func (Sink) Create(name string) (io.WriteCloser, error) {
	perm := DefaultPerm
	if info, err := os.Stat(name); err == nil {
		if info.IsDir() {
			return nil, fmt.Errorf("cannot write %s: is a directory", name)
		}
		perm = info.Mode().Perm()
	}

	dir, base := filepath.Split(name)
	tmp := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s for writing: %w", name, err)
	}

	return &AtomicWriter{file: f, tmp: tmp, name: name}, nil
}

// AtomicWriter is the writer returned by Sink.Create.
type AtomicWriter struct {
	file   *os.File
	tmp    string
	name   string
	closed bool
}

func (w *AtomicWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	return w.file.Write(p)
}

// Close flushes the temporary file and moves it over the destination.
func (w *AtomicWriter) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true

	if err := w.file.Sync(); err != nil {
		w.discard()
		return fmt.Errorf("failed to sync %s: %w", w.name, err)
	}
	if err := w.file.Close(); err != nil {
		_ = os.Remove(w.tmp)
		return fmt.Errorf("failed to close %s: %w", w.name, err)
	}
	if err := os.Rename(w.tmp, w.name); err != nil {
		_ = os.Remove(w.tmp)
		return fmt.Errorf("failed to replace %s: %w", w.name, err)
	}
	return nil
}

// Abort releases the file and leaves the destination untouched.
func (w *AtomicWriter) Abort() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true
	w.discard()
	return nil
}

func (w *AtomicWriter) discard() {
	_ = w.file.Close()
	_ = os.Remove(w.tmp)
}
