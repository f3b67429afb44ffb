package document

import (
	"fmt"
	"io"

	"github.com/jacoelho/jed/internal/encode"
)

// Sink opens named destinations for writing.
type Sink interface {
	Create(name string) (io.WriteCloser, error)
}

// aborter is implemented by writers that can discard what was written.
type aborter interface {
	Abort() error
}

// PrettyPrint writes the subtree at path in file form followed by a newline.
func (d *Document) PrettyPrint(w io.Writer, path string, opts ...encode.Option) error {
	v, err := d.Get(path)
	if err != nil {
		return err
	}
	if err := encode.Pretty(w, v, opts...); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// WriteTo writes the whole document in file form.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := d.PrettyPrint(cw, "")
	return cw.n, err
}

// Save writes the subtree at path, or the whole document for the empty path,
// to the document origin.
func (d *Document) Save(sink Sink, path string) error {
	if d.origin == "" {
		return fmt.Errorf("%w: document has no origin to save to", ErrIO)
	}
	return d.SaveAs(sink, d.origin, path)
}

// SaveAs writes the subtree at path to file. The writer is always released;
// when writing fails and the writer supports it, the partial output is
// discarded instead of committed.
func (d *Document) SaveAs(sink Sink, file, path string) error {
	v, err := d.Get(path)
	if err != nil {
		return err
	}

	w, err := sink.Create(file)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if err := encode.Pretty(w, v); err != nil {
		release(w)
		return fmt.Errorf("%w: write %s: %w", ErrIO, file, err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		release(w)
		return fmt.Errorf("%w: write %s: %w", ErrIO, file, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

func release(w io.WriteCloser) {
	if a, ok := w.(aborter); ok {
		_ = a.Abort()
		return
	}
	_ = w.Close()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
