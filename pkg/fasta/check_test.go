package fasta_test

import (
	"errors"
	"strings"
	"testing"

	"protfasta/pkg/fasta"
)

func TestCheckInputs(t *testing.T) {
	var checkdata = []struct {
		name string
		opts fasta.Options
		ok   bool
	}{
		{"defaults", *fasta.DefaultOptions(), true},
		{"bad dup record", fasta.Options{DupRecordAction: "explode",
			DupSeqAction: fasta.Ignore, InvalidSeqAction: fasta.Fail}, false},
		{"bad dup seq", fasta.Options{DupRecordAction: fasta.Fail,
			DupSeqAction: "convert", InvalidSeqAction: fasta.Fail}, false},
		{"convert only for invalid", fasta.Options{DupRecordAction: fasta.Fail,
			DupSeqAction: fasta.Ignore, InvalidSeqAction: fasta.Convert}, true},
		{"ignore plus unique", fasta.Options{ExpectUniqueHeader: true,
			DupRecordAction: fasta.Ignore, DupSeqAction: fasta.Ignore,
			InvalidSeqAction: fasta.Fail}, false},
		{"ignore without unique", fasta.Options{ExpectUniqueHeader: false,
			DupRecordAction: fasta.Ignore, DupSeqAction: fasta.Ignore,
			InvalidSeqAction: fasta.Fail}, true},
	}
	for _, x := range checkdata {
		err := fasta.CheckInputs(&x.opts)
		if x.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", x.name, err)
		}
		if !x.ok {
			if !errors.Is(err, fasta.ErrConfig) {
				t.Fatalf("%s: expected ErrConfig, got %v", x.name, err)
			}
		}
	}
}

// A header parser that blows up must be caught on the canary call,
// before any real parsing starts.
func TestCheckParser(t *testing.T) {
	s_opts := fasta.DefaultOptions()
	s_opts.HeaderParser = func(h string) string { return strings.Fields(h)[10] }
	err := fasta.CheckInputs(s_opts)
	if !errors.Is(err, fasta.ErrConfig) {
		t.Fatalf("expected ErrConfig from panicking parser, got %v", err)
	}

	s_opts.HeaderParser = strings.ToLower
	if err := fasta.CheckInputs(s_opts); err != nil {
		t.Fatalf("well behaved parser rejected: %v", err)
	}

	// Only panics count. A parser that maps everything to "" is odd
	// but legal; the canary judges behaviour, not content.
	s_opts.HeaderParser = func(string) string { return "" }
	if err := fasta.CheckInputs(s_opts); err != nil {
		t.Fatalf("empty-result parser rejected: %v", err)
	}
}
