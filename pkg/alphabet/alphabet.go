// Package alphabet checks protein sequences against the twenty
// standard amino acid codes and converts the common degenerate codes
// to standard ones. It knows nothing about fasta files; it is handed
// bare sequence strings.

package alphabet

import (
	"fmt"

	"protfasta/pkg/common"
)

const standard = "ACDEFGHIKLMNPQRSTVWY"

var isStandard [256]bool

// Degenerate or non-standard codes and what we turn them into.
// A zero entry means the residue is removed entirely.
var conv = [256]byte{
	'B': 'N', // Asx, treat as asparagine
	'U': 'C', // selenocysteine
	'X': 'S', // unknown, serine is as good a guess as any
	'Z': 'Q', // Glx, treat as glutamine
	'*':            0, // stop
	common.GapChar: 0,
}

var convertible [256]bool

func init() {
	for i := 0; i < len(standard); i++ {
		isStandard[standard[i]] = true
	}
	for _, c := range []byte{'B', 'U', 'X', 'Z', '*', common.GapChar} {
		convertible[c] = true
	}
}

// Check returns nil if every residue of seq is one of the standard
// amino acids. Otherwise it names the first offender and its position,
// counting from 1. Sequences are expected upper case.
func Check(seq string) error {
	for i := 0; i < len(seq); i++ {
		if !isStandard[seq[i]] {
			return fmt.Errorf("residue %q at position %d is not a standard amino acid", seq[i], i+1)
		}
	}
	return nil
}

// Convert rewrites the degenerate codes in seq to standard residues
// and drops gaps and stop codes. It reports how many characters were
// changed or removed. Residues it cannot fix are left alone, so run
// Check afterwards if the result must be strictly standard.
func Convert(seq string) (string, int) {
	nchg := 0
	for i := 0; i < len(seq); i++ {
		if convertible[seq[i]] {
			goto rewrite
		}
	}
	return seq, 0 // common case, nothing to do, no copy

rewrite:
	b := make([]byte, 0, len(seq))
	for i := 0; i < len(seq); i++ {
		c := seq[i]
		if !convertible[c] {
			b = append(b, c)
			continue
		}
		nchg++
		if t := conv[c]; t != 0 {
			b = append(b, t)
		}
	}
	return string(b), nchg
}
