// The top level read path. Parsing gives the raw records; the policy
// knobs in Options are then applied in a fixed order: duplicate
// records, duplicate sequences, invalid residues, and finally the
// optional write-back. Either the whole pipeline succeeds or an error
// comes back and no records do.

package fasta

import (
	"fmt"

	"protfasta/pkg/alphabet"
	"protfasta/pkg/dupseq"
)

// ReadFasta reads the fasta file fname and applies every policy in
// s_opts. This is the function most callers want; ReadList and
// ReadMap are the raw parser underneath it.
func ReadFasta(fname string, s_opts *Options) ([]Record, error) {
	if s_opts == nil {
		s_opts = DefaultOptions()
	}
	if err := CheckInputs(s_opts); err != nil {
		return nil, err
	}

	// When duplicates are to be removed or ignored they have to
	// survive the parse, so uniqueness is re-checked afterwards.
	inner := *s_opts
	if s_opts.DupRecordAction != Fail {
		inner.ExpectUniqueHeader = false
	}

	recs, err := ReadList(fname, &inner)
	if err != nil {
		return nil, err
	}
	if recs, err = applyDupRecord(recs, s_opts); err != nil {
		return nil, err
	}
	if recs, err = applyDupSeq(recs, s_opts); err != nil {
		return nil, err
	}
	if recs, err = applyInvalidSeq(recs, s_opts); err != nil {
		return nil, err
	}
	if s_opts.OutputPath != "" {
		if err := WriteFile(s_opts.OutputPath, recs, s_opts.Width); err != nil {
			return nil, err
		}
	}
	return recs, nil
}

// applyDupRecord handles records that are identical in both header and
// sequence. With Fail and a relaxed unique-header flag, two records
// may share a header as long as their sequences differ.
func applyDupRecord(recs []Record, s_opts *Options) ([]Record, error) {
	switch s_opts.DupRecordAction {
	case Ignore:
		return recs, nil
	case Fail:
		seen := make(map[Record]struct{}, len(recs))
		for _, r := range recs {
			if _, ok := seen[r]; ok {
				return nil, fmt.Errorf("found %w [%s]", ErrDupRecord, r.Cmmt)
			}
			seen[r] = struct{}{}
		}
		return recs, nil
	case Remove:
		seen := make(map[Record]struct{}, len(recs))
		out := recs[:0]
		for _, r := range recs {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			out = append(out, r)
		}
		nrmv := len(recs) - len(out)
		if s_opts.Verbose && nrmv > 0 {
			s_opts.logger().Info("removed duplicate records", "n", nrmv)
		}
		if s_opts.ExpectUniqueHeader {
			cseen := make(map[string]struct{}, len(out))
			for _, r := range out {
				if _, ok := cseen[r.Cmmt]; ok {
					return nil, fmt.Errorf("found %w [%s]", ErrDupHeader, r.Cmmt)
				}
				cseen[r.Cmmt] = struct{}{}
			}
		}
		return out, nil
	}
	return recs, nil
}

// applyDupSeq handles identical sequences that sit under different
// headers. Remove keeps the first of each set.
func applyDupSeq(recs []Record, s_opts *Options) ([]Record, error) {
	if s_opts.DupSeqAction == Ignore {
		return recs, nil
	}
	alg := s_opts.DupSeqAlg
	if alg == 0 {
		alg = dupseq.AlgXXH3
	}
	seqs := make([]string, len(recs))
	for i, r := range recs {
		seqs[i] = r.Seq
	}
	groups, err := dupseq.Groups(seqs, alg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if len(groups) == 0 {
		return recs, nil
	}
	if s_opts.DupSeqAction == Fail {
		g := groups[0]
		return nil, fmt.Errorf("found %w shared by [%s] and [%s]",
			ErrDupSequence, recs[g[0]].Cmmt, recs[g[1]].Cmmt)
	}
	// Remove
	drop := make(map[int]struct{})
	for _, g := range groups {
		for _, i := range g[1:] {
			drop[i] = struct{}{}
		}
	}
	out := recs[:0]
	for i, r := range recs {
		if _, ok := drop[i]; ok {
			continue
		}
		out = append(out, r)
	}
	if s_opts.Verbose {
		s_opts.logger().Info("removed duplicate sequences", "n", len(drop))
	}
	return out, nil
}

// applyInvalidSeq checks every sequence against the standard amino
// acid alphabet. Convert first rewrites the degenerate codes and only
// fails if something unfixable remains.
func applyInvalidSeq(recs []Record, s_opts *Options) ([]Record, error) {
	switch s_opts.InvalidSeqAction {
	case Ignore:
		return recs, nil
	case Fail:
		for _, r := range recs {
			if err := alphabet.Check(r.Seq); err != nil {
				return nil, fmt.Errorf("%w in [%s]: %v", ErrInvalidSeq, r.Cmmt, err)
			}
		}
		return recs, nil
	case Remove:
		out := recs[:0]
		for _, r := range recs {
			if alphabet.Check(r.Seq) == nil {
				out = append(out, r)
			}
		}
		if s_opts.Verbose && len(out) != len(recs) {
			s_opts.logger().Info("removed invalid sequences", "n", len(recs)-len(out))
		}
		return out, nil
	case Convert:
		nchg := 0
		for i, r := range recs {
			s, n := alphabet.Convert(r.Seq)
			nchg += n
			if n > 0 {
				recs[i].Seq = s
			}
			if err := alphabet.Check(recs[i].Seq); err != nil {
				return nil, fmt.Errorf("%w in [%s] after conversion: %v", ErrInvalidSeq, r.Cmmt, err)
			}
		}
		if s_opts.Verbose && nchg > 0 {
			s_opts.logger().Info("converted non-standard residues", "n", nchg)
		}
		return recs, nil
	}
	return recs, nil
}
