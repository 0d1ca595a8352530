package fasta

import "errors"

// Sentinel errors so callers can pick apart failures with errors.Is.
// Everything the package returns wraps one of these. ErrNoFile is kept
// separate from ErrConfig since a missing input file is the one
// condition callers routinely want to handle on its own.
var (
	ErrConfig      = errors.New("bad option")
	ErrNoFile      = errors.New("unable to find file")
	ErrDupHeader   = errors.New("non-unique fasta header")
	ErrDupRecord   = errors.New("duplicate record")
	ErrDupSequence = errors.New("duplicate sequence")
	ErrInvalidSeq  = errors.New("invalid sequence")
)
