// Sequence collections often arrive gzipped. zReader takes a file
// pointer and optionally wraps it, so upon calling Close, the
// decompressor is closed, followed by the underlying file.

package fasta

import (
	"errors"
	"io"

	"github.com/klauspost/compress/gzip"
)

type zReader struct {
	fp   io.ReadCloser
	zrdr *gzip.Reader
}

// Read makes sure we read from the compressed stream and not the
// underlying file stream.
func (fc *zReader) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.fp.Read(p)
}

// Close closes the decompressor, then the backing readCloser.
func (fc *zReader) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	var s string
	if e := fc.zrdr.Close(); e != nil {
		s = e.Error()
	}
	if e := fc.fp.Close(); e != nil {
		s = s + " " + e.Error()
	}
	if s == "" {
		return nil
	}
	return errors.New(s)
}

type readSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// wrapMaybe decides if the underlying stream is compressed and wraps
// the file pointer if necessary. If you pass in something which can
// seek, you get back a ReadCloser which cannot. This is the price one
// pays for reading from a compressed reader.
func wrapMaybe(fpIn readSeekCloser) (*zReader, error) {
	if zrdr, err := gzip.NewReader(fpIn); err == nil {
		return &zReader{fp: fpIn, zrdr: zrdr}, nil
	}
	_, err := fpIn.Seek(0, io.SeekStart)
	return &zReader{fp: fpIn}, err // zrdr implicitly nil
}
