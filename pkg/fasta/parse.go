// Parser for fasta format files. This is a small state machine fed one
// classified line at a time. It is either between records or building
// one, and a record is only committed when its header has picked up at
// least one sequence character. A header followed immediately by
// another header never becomes a record. Callers depend on this to
// skip empty entries, so do not change it.

package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Record is one fasta entry, the header without its '>' and the
// sequence. Sequences are stored upper case, whatever the file had.
type Record struct {
	Cmmt string `json:"header"`
	Seq  string `json:"sequence"`
}

// A sink accumulates finished records. checkDup is always called
// before add, and an error from it aborts the whole parse.
type sink interface {
	checkDup(cmmt string) error
	add(r Record)
	nRec() int
}

// listSink keeps records in file order. Headers may repeat unless
// expectUnique is set.
type listSink struct {
	recs         []Record
	seen         map[string]struct{}
	expectUnique bool
}

func newListSink(expectUnique bool) *listSink {
	return &listSink{seen: make(map[string]struct{}), expectUnique: expectUnique}
}

func (l *listSink) checkDup(cmmt string) error {
	if !l.expectUnique {
		return nil
	}
	if _, ok := l.seen[cmmt]; ok {
		return fmt.Errorf("found %w [%s]", ErrDupHeader, cmmt)
	}
	return nil
}

func (l *listSink) add(r Record) {
	l.recs = append(l.recs, r)
	l.seen[r.Cmmt] = struct{}{}
}

func (l *listSink) nRec() int { return len(l.recs) }

// mapSink keys sequences by header. A repeated header is always an
// error here. Silently overwriting an entry is never acceptable, no
// matter what the unique-header flag says.
type mapSink struct {
	seqs map[string]string
}

func newMapSink() *mapSink { return &mapSink{seqs: make(map[string]string)} }

func (m *mapSink) checkDup(cmmt string) error {
	if _, ok := m.seqs[cmmt]; ok {
		return fmt.Errorf("found %w [%s]", ErrDupHeader, cmmt)
	}
	return nil
}

func (m *mapSink) add(r Record) { m.seqs[r.Cmmt] = r.Seq }

func (m *mapSink) nRec() int { return len(m.seqs) }

// assembler is the parser state. active says whether we are building a
// record. cmmt and seq are only meaningful while we are.
type assembler struct {
	dst    sink
	hprsr  func(string) string
	cmmt   string
	seq    []byte
	active bool
}

// commit finishes the record being built. The duplicate check runs
// first so a violation leaves nothing half-written.
func (a *assembler) commit() error {
	if err := a.dst.checkDup(a.cmmt); err != nil {
		return err
	}
	a.dst.add(Record{Cmmt: a.cmmt, Seq: strings.ToUpper(string(a.seq))})
	return nil
}

// line advances the state machine by one classified line.
func (a *assembler) line(kind lineKind, text string) error {
	switch kind {
	case blankLine: // transparent, wherever it turns up
	case headerLine:
		if a.active && len(a.seq) > 0 {
			if err := a.commit(); err != nil {
				return err
			}
		}
		if a.hprsr != nil {
			text = a.hprsr(text)
		}
		a.cmmt = text
		a.seq = a.seq[:0]
		a.active = true
	case seqLine:
		if !a.active {
			return nil // text before the first header never forms a record
		}
		a.seq = append(a.seq, text...)
	}
	return nil
}

// finish handles end of input, which closes a record exactly as the
// next header line would have.
func (a *assembler) finish() error {
	if a.active && len(a.seq) > 0 {
		return a.commit()
	}
	return nil
}

// Sequence lines can be long. Let the scanner grow up to this.
const maxLine = 64 * 1024 * 1024

// parse drives the classifier and assembler over rdr. The whole input
// is consumed or an error comes back and the sink contents are not to
// be used.
func parse(rdr io.Reader, dst sink, s_opts *Options) error {
	a := assembler{dst: dst, hprsr: s_opts.HeaderParser}
	scnr := bufio.NewScanner(rdr)
	scnr.Buffer(make([]byte, 0, 64*1024), maxLine)
	nline := 0
	for scnr.Scan() {
		nline++
		kind, text := classify(scnr.Text())
		if err := a.line(kind, text); err != nil {
			return err
		}
	}
	if err := scnr.Err(); err != nil {
		return fmt.Errorf("reading fasta input: %w", err)
	}
	if err := a.finish(); err != nil {
		return err
	}
	if s_opts.Verbose {
		s_opts.logger().Info("read fasta input", "lines", nline, "records", dst.nRec())
	}
	return nil
}

// ParseList reads fasta records from rdr and returns them in file
// order. Headers must be unique only if s_opts says so.
func ParseList(rdr io.Reader, s_opts *Options) ([]Record, error) {
	if s_opts == nil {
		s_opts = DefaultOptions()
	}
	dst := newListSink(s_opts.ExpectUniqueHeader)
	if err := parse(rdr, dst, s_opts); err != nil {
		return nil, err
	}
	return dst.recs, nil
}

// ParseMap reads fasta records from rdr into a header to sequence map.
// Any repeated header is an error in this mode.
func ParseMap(rdr io.Reader, s_opts *Options) (map[string]string, error) {
	if s_opts == nil {
		s_opts = DefaultOptions()
	}
	dst := newMapSink()
	if err := parse(rdr, dst, s_opts); err != nil {
		return nil, err
	}
	return dst.seqs, nil
}
