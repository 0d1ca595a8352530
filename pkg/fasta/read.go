package fasta

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// open gets a reader for fname, seeing through gzip compression. A
// missing file comes back wrapping ErrNoFile so callers can tell it
// apart from everything else.
func open(fname string) (*zReader, error) {
	fp, err := os.Open(fname)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoFile, fname)
		}
		return nil, fmt.Errorf("opening %s: %w", fname, err)
	}
	rdr, err := wrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("opening %s: %w", fname, err)
	}
	return rdr, nil
}

// ReadList reads the fasta file fname and returns its records in file
// order. The file handle is released on every path out of here.
func ReadList(fname string, s_opts *Options) (recs []Record, err error) {
	fp, err := open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	if recs, err = ParseList(fp, s_opts); err != nil {
		return nil, fmt.Errorf("file %s: %w", fname, err)
	}
	return recs, nil
}

// ReadMap reads the fasta file fname into a header to sequence map.
func ReadMap(fname string, s_opts *Options) (map[string]string, error) {
	fp, err := open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	seqs, err := ParseMap(fp, s_opts)
	if err != nil {
		return nil, fmt.Errorf("file %s: %w", fname, err)
	}
	return seqs, nil
}
