// Package fasta reads and writes fasta format files of protein
// sequences. Parsing is a single pass over the input. A set of policy
// knobs says what should happen on duplicate headers, duplicate
// records, duplicate sequences and residues outside the standard
// amino acid alphabet.

package fasta

import (
	"github.com/charmbracelet/log"

	"protfasta/pkg/dupseq"
)

// An Action says how to react when parsing meets duplicate records,
// duplicate sequences or invalid residues.
type Action string

const (
	Ignore  Action = "ignore"
	Fail    Action = "fail"
	Remove  Action = "remove"
	Convert Action = "convert" // only meaningful for invalid sequences
)

// DefaultWidth is the line width used when writing sequences.
// It is what uniprot uses.
const DefaultWidth = 60

// Options contains all the choices passed in from the caller.
type Options struct {
	ExpectUniqueHeader bool                // each header must occur once
	HeaderParser       func(string) string // optional rewrite of raw headers
	DupRecordAction    Action              // identical (header, sequence) pairs
	DupSeqAction       Action              // identical sequences, different headers
	InvalidSeqAction   Action              // residues outside the standard alphabet
	DupSeqAlg          dupseq.Alg          // digest for sequence comparison, zero means xxh3
	OutputPath         string              // if set, ReadFasta writes the result here
	Width              int                 // line width on output, < 1 means no wrapping
	Verbose            bool                // progress notices while parsing
	Log                *log.Logger         // destination for notices, nil means default
}

// DefaultOptions returns the options protfasta started life with.
func DefaultOptions() *Options {
	return &Options{
		ExpectUniqueHeader: true,
		DupRecordAction:    Fail,
		DupSeqAction:       Ignore,
		InvalidSeqAction:   Fail,
		Width:              DefaultWidth,
	}
}

// logger always gives us something we can log to.
func (s_opts *Options) logger() *log.Logger {
	if s_opts.Log != nil {
		return s_opts.Log
	}
	return log.Default()
}
