// Package comp tallies residue composition over a set of fasta
// records. Counts go into a symbols x records matrix, one row per
// symbol actually seen, so rare alphabets do not cost 256 rows.

package comp

import (
	"fmt"
	"io"
	"math"

	"github.com/andrew-torda/matrix"

	"protfasta/pkg/fasta"
)

const badMap = math.MaxUint8 // marks a symbol as not seen

// Table is the composition of a record set. counts.Mat looks like
// [number_of_symbols][number_of_records]. We store float32 since the
// counts are usually normalised to fractions later, and that way we
// avoid allocating a second matrix.
type Table struct {
	Cmmts   []string
	mapping [256]uint8
	revmap  []uint8
	counts  *matrix.FMatrix2d
	isFrac  bool
}

// mapsyms looks at the symbols used across recs and makes the little
// mapping arrays between bytes and matrix rows.
func (tbl *Table) mapsyms(recs []fasta.Record) {
	var symUsed [256]bool
	for _, r := range recs {
		for i := 0; i < len(r.Seq); i++ {
			symUsed[r.Seq[i]] = true
		}
	}
	for i := range tbl.mapping { // initialise with bad value, to
		tbl.mapping[i] = badMap //  trap errors later
	}
	var n uint8
	for i := range symUsed {
		if symUsed[i] {
			tbl.mapping[i] = n
			tbl.revmap = append(tbl.revmap, uint8(i))
			n++
		}
	}
}

// Count builds the composition table for recs.
func Count(recs []fasta.Record) *Table {
	tbl := new(Table)
	tbl.mapsyms(recs)
	tbl.Cmmts = make([]string, len(recs))
	nrow := len(tbl.revmap)
	if nrow == 0 { // nothing seen, leave counts nil
		return tbl
	}
	tbl.counts = matrix.NewFMatrix2d(nrow, len(recs))
	for ir, r := range recs {
		tbl.Cmmts[ir] = r.Cmmt
		for i := 0; i < len(r.Seq); i++ {
			tbl.counts.Mat[tbl.mapping[r.Seq[i]]][ir]++
		}
	}
	return tbl
}

// Syms returns the symbols in the table, one per matrix row.
func (tbl *Table) Syms() []byte {
	out := make([]byte, len(tbl.revmap))
	for i, c := range tbl.revmap {
		out[i] = byte(c)
	}
	return out
}

// Get returns the count, or fraction after Frac, of symbol c in record
// irec. Asking about a symbol that never occurs gives zero.
func (tbl *Table) Get(c byte, irec int) float32 {
	row := tbl.mapping[c]
	if row == badMap || tbl.counts == nil {
		return 0
	}
	return tbl.counts.Mat[row][irec]
}

// Frac converts counts to per-record fractions. If 'A' occurs twice in
// a sequence of five residues, its entry changes from 2 to 0.4.
// Calling it twice does nothing the second time.
func (tbl *Table) Frac() {
	if tbl.isFrac || tbl.counts == nil {
		return
	}
	nrow, ncol := tbl.counts.Size()
	for icol := 0; icol < ncol; icol++ {
		var total float32
		for irow := 0; irow < nrow; irow++ {
			total += tbl.counts.Mat[irow][icol]
		}
		if total == 0 {
			continue
		}
		for irow := 0; irow < nrow; irow++ {
			tbl.counts.Mat[irow][icol] /= total
		}
	}
	tbl.isFrac = true
}

// Fprint writes the table, one row per symbol, using format for each
// number, something like "%6.1f".
func (tbl *Table) Fprint(w io.Writer, format string) {
	if tbl.counts == nil {
		return
	}
	_, ncol := tbl.counts.Size()
	for ic, m := range tbl.revmap {
		fmt.Fprintf(w, "%c ", m)
		for i := 0; i < ncol; i++ {
			fmt.Fprintf(w, format, tbl.counts.Mat[ic][i])
		}
		fmt.Fprintf(w, "\n")
	}
}
