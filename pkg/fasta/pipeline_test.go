package fasta_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"protfasta/pkg/common"
	"protfasta/pkg/fasta"
)

// readStr runs the full pipeline over the fasta text s.
func readStr(t *testing.T, s string, s_opts *fasta.Options) ([]fasta.Record, error) {
	t.Helper()
	fname, err := common.WrtTemp(s)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(fname) })
	return fasta.ReadFasta(fname, s_opts)
}

func TestDupRecordRemove(t *testing.T) {
	s_opts := fasta.DefaultOptions()
	s_opts.DupRecordAction = fasta.Remove
	recs, err := readStr(t, ">a\nmkv\n>a\nmkv\n>b\nqrs\n", s_opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 || recs[0].Cmmt != "a" || recs[1].Cmmt != "b" {
		t.Fatalf("expected a and b after removal, got %v", recs)
	}

	// Same header, different sequence: removal cannot fix that, and
	// unique headers are still expected.
	_, err = readStr(t, ">a\nmkv\n>a\nqrs\n", s_opts)
	if !errors.Is(err, fasta.ErrDupHeader) {
		t.Fatalf("expected ErrDupHeader, got %v", err)
	}
}

func TestDupRecordFail(t *testing.T) {
	s_opts := fasta.DefaultOptions()
	s_opts.ExpectUniqueHeader = false
	_, err := readStr(t, ">a\nmkv\n>a\nmkv\n", s_opts)
	if !errors.Is(err, fasta.ErrDupRecord) {
		t.Fatalf("expected ErrDupRecord, got %v", err)
	}

	// Shared header but different sequences is allowed here.
	recs, err := readStr(t, ">a\nmkv\n>a\nqrs\n", s_opts)
	if err != nil || len(recs) != 2 {
		t.Fatalf("got %v, %v", recs, err)
	}
}

func TestDupRecordIgnore(t *testing.T) {
	s_opts := fasta.DefaultOptions()
	s_opts.ExpectUniqueHeader = false
	s_opts.DupRecordAction = fasta.Ignore
	recs, err := readStr(t, ">a\nmkv\n>a\nmkv\n", s_opts)
	if err != nil || len(recs) != 2 {
		t.Fatalf("ignore should keep both, got %v, %v", recs, err)
	}
}

func TestDupSeq(t *testing.T) {
	const in = ">a\nmkv\n>b\nmkv\n>c\nqrs\n"
	s_opts := fasta.DefaultOptions()
	s_opts.DupSeqAction = fasta.Fail
	_, err := readStr(t, in, s_opts)
	if !errors.Is(err, fasta.ErrDupSequence) {
		t.Fatalf("expected ErrDupSequence, got %v", err)
	}

	s_opts.DupSeqAction = fasta.Remove
	recs, err := readStr(t, in, s_opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 || recs[0].Cmmt != "a" || recs[1].Cmmt != "c" {
		t.Fatalf("expected first of each sequence kept, got %v", recs)
	}
}

func TestInvalidSeq(t *testing.T) {
	const in = ">a\nmkv\n>b\nmkbz\n"
	s_opts := fasta.DefaultOptions()
	_, err := readStr(t, in, s_opts)
	if !errors.Is(err, fasta.ErrInvalidSeq) {
		t.Fatalf("expected ErrInvalidSeq, got %v", err)
	}

	s_opts.InvalidSeqAction = fasta.Remove
	recs, err := readStr(t, in, s_opts)
	if err != nil || len(recs) != 1 || recs[0].Cmmt != "a" {
		t.Fatalf("expected only a to survive, got %v, %v", recs, err)
	}

	s_opts.InvalidSeqAction = fasta.Convert
	recs, err = readStr(t, in, s_opts)
	if err != nil {
		t.Fatal(err)
	}
	if recs[1].Seq != "MKNQ" {
		t.Fatalf("conversion wrong, got %q", recs[1].Seq)
	}

	// Digits cannot be converted to anything.
	_, err = readStr(t, ">a\nMK1V\n", s_opts)
	if !errors.Is(err, fasta.ErrInvalidSeq) {
		t.Fatalf("expected ErrInvalidSeq after conversion, got %v", err)
	}
}

func TestInvalidSeqIgnore(t *testing.T) {
	s_opts := fasta.DefaultOptions()
	s_opts.InvalidSeqAction = fasta.Ignore
	recs, err := readStr(t, ">a\nmk-v*\n", s_opts)
	if err != nil || recs[0].Seq != "MK-V*" {
		t.Fatalf("ignore should keep the sequence as parsed, got %v, %v", recs, err)
	}
}

func TestOutputPath(t *testing.T) {
	outname := filepath.Join(t.TempDir(), "out.fasta")
	s_opts := fasta.DefaultOptions()
	s_opts.OutputPath = outname
	s_opts.Width = 2
	want, err := readStr(t, ">a\nMKVLI\n", s_opts)
	if err != nil {
		t.Fatal(err)
	}
	got, err := fasta.ReadList(outname, fasta.DefaultOptions())
	if err != nil {
		t.Fatalf("reading back written file: %v", err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("round trip through OutputPath broke: %v vs %v", got, want)
	}
}

func TestPipelineConfigError(t *testing.T) {
	s_opts := fasta.DefaultOptions()
	s_opts.DupRecordAction = fasta.Ignore // clashes with unique headers
	_, err := readStr(t, ">a\nmkv\n", s_opts)
	if !errors.Is(err, fasta.ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}
