// Package failio wraps readers and writers so they fail on purpose
// after a set number of bytes. It exists for testing: wrap whatever
// the code under test reads from or writes to, and check the error
// comes all the way back. Unlike a random fault injector, the failure
// point is exact, so tests stay reproducible.

package failio

import (
	"errors"
	"io"
)

// ErrBroken is what the wrappers return once their byte budget is
// spent.
var ErrBroken = errors.New("broken by failio")

// Reader passes bytes through until n have been read, then errors.
type Reader struct {
	rdr  io.Reader
	left int
}

// NewReader wraps rdr so it fails after n bytes.
func NewReader(rdr io.Reader, n int) *Reader {
	return &Reader{rdr: rdr, left: n}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.left <= 0 {
		return 0, ErrBroken
	}
	if len(p) > r.left {
		p = p[:r.left]
	}
	n, err := r.rdr.Read(p)
	r.left -= n
	return n, err
}

// Writer accepts bytes until n have been written, then errors.
type Writer struct {
	wrtr io.Writer
	left int
}

// NewWriter wraps wrtr so it fails after n bytes.
func NewWriter(wrtr io.Writer, n int) *Writer {
	return &Writer{wrtr: wrtr, left: n}
}

func (w *Writer) Write(p []byte) (int, error) {
	if len(p) <= w.left {
		n, err := w.wrtr.Write(p)
		w.left -= n
		return n, err
	}
	n, err := w.wrtr.Write(p[:w.left])
	w.left -= n
	if err == nil {
		err = ErrBroken
	}
	return n, err
}
