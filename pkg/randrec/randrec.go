// Package randrec writes random protein records in fasta format. It is
// for making test input. With Messy set, sequences are broken over
// lines of uneven length with blank lines and stray padding thrown in,
// which is what files from the wild look like.

package randrec

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
)

var letters = []byte("acdefghiklmnpqrstvwy")

// Args is the set of arguments passed to Write.
type Args struct {
	Iseed int64     // random number seed, same seed same output
	Wrtr  io.Writer // where we write to
	Cmmt  string    // comment stem, headers are "stem 1", "stem 2", ...
	Nseq  int       // number of sequences
	Len   int       // length of each sequence
	Messy bool      // ragged lines, blank lines, trailing spaces
}

// writeseq sends one sequence out, possibly chopped into ragged lines.
func writeseq(bw *bufio.Writer, s []byte, messy bool, rnd *rand.Rand) {
	if !messy {
		bw.Write(s)
		bw.WriteByte('\n')
		return
	}
	for len(s) > 0 {
		n := 1 + rnd.Intn(70)
		if n > len(s) {
			n = len(s)
		}
		bw.Write(s[:n])
		s = s[n:]
		if rnd.Intn(5) == 0 {
			bw.WriteString("   ") // trailing rubbish, trimmed on read
		}
		bw.WriteByte('\n')
		if rnd.Intn(7) == 0 {
			bw.WriteByte('\n')
		}
	}
}

// Write puts args.Nseq random records on args.Wrtr. Headers are
// numbered so they are unique.
func Write(args *Args) error {
	cmmt := args.Cmmt
	if cmmt == "" {
		cmmt = "seq"
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	bw := bufio.NewWriter(args.Wrtr)
	width := len(fmt.Sprintf("%d", args.Nseq))
	s := make([]byte, args.Len)
	for i := 1; i <= args.Nseq; i++ {
		for j := range s {
			s[j] = letters[rnd.Intn(len(letters))]
		}
		fmt.Fprintf(bw, ">%s %[2]*d\n", cmmt, width, i)
		writeseq(bw, s, args.Messy, rnd)
	}
	return bw.Flush()
}
