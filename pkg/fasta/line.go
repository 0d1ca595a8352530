package fasta

import (
	"strings"

	"protfasta/pkg/common"
)

// A lineKind says what one raw input line is, after trimming.
type lineKind byte

const (
	blankLine lineKind = iota // nothing but whitespace, skipped
	headerLine
	seqLine
)

// classify trims a raw line and says what it is. For header lines the
// returned text is everything after the '>', kept verbatim, so
// "> name" gives " name". For sequence lines it is the trimmed text,
// case untouched. Sequence alphabet checking does not happen here;
// that is a policy applied after parsing.
func classify(raw string) (lineKind, string) {
	sline := strings.TrimSpace(raw)
	if len(sline) == 0 {
		return blankLine, ""
	}
	if sline[0] == common.CmmtChar {
		return headerLine, sline[1:]
	}
	return seqLine, sline
}
