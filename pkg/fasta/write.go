// Writer for fasta format. The inverse of the parser, but it stands on
// its own: any records can be written, not just ones we parsed.

package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"protfasta/pkg/common"
)

// WriteTo writes recs to w in fasta format, in slice order. Sequence
// lines are wrapped at width columns; width < 1 disables wrapping and
// each sequence goes out as one line. Each record is followed by
// exactly one blank separator line, also when the sequence length is
// an exact multiple of width.
func WriteTo(w io.Writer, recs []Record, width int) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		fmt.Fprintf(bw, "%c%s\n", common.CmmtChar, r.Cmmt)
		wroteNL := false
		for i := 0; i < len(r.Seq); i++ {
			bw.WriteByte(r.Seq[i])
			wroteNL = false
			if width >= 1 && (i+1)%width == 0 {
				bw.WriteByte('\n')
				wroteNL = true
			}
		}
		// One blank line between records. If the last residue landed
		// exactly on a wrap boundary, the line is already closed.
		if wroteNL {
			bw.WriteByte('\n')
		} else {
			bw.WriteString("\n\n")
		}
	}
	return bw.Flush()
}

// WriteMapTo writes a header to sequence map. Go gives no stable map
// iteration, so entries go out sorted by header. Two calls with the
// same map produce identical bytes.
func WriteMapTo(w io.Writer, seqs map[string]string, width int) error {
	cmmts := make([]string, 0, len(seqs))
	for c := range seqs {
		cmmts = append(cmmts, c)
	}
	sort.Strings(cmmts)
	recs := make([]Record, 0, len(seqs))
	for _, c := range cmmts {
		recs = append(recs, Record{Cmmt: c, Seq: seqs[c]})
	}
	return WriteTo(w, recs, width)
}

// WriteFile writes recs to the file fname, creating or truncating it.
func WriteFile(fname string, recs []Record, width int) error {
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("creating output sequence file: %w", err)
	}
	if err := WriteTo(fp, recs, width); err != nil {
		fp.Close()
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return fp.Close()
}
