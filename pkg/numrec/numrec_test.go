package numrec_test

import (
	"os"
	"testing"

	"protfasta/pkg/common"
	"protfasta/pkg/numrec"
)

func TestCount(t *testing.T) {
	var countdata = []struct {
		in   string
		want int
	}{
		{">a\nmkv\n>b\nqrs\n", 2},
		{">a\nmkv\n", 1},
		{"", 0},
		{">a\n>b\n>c\nmkv\n", 3}, // dangling headers count too, it is a tally
	}
	for tnum, x := range countdata {
		fname, err := common.WrtTemp(x.in)
		if err != nil {
			t.Fatal(err)
		}
		defer os.Remove(fname)
		n, err := numrec.Count(fname)
		if err != nil {
			t.Fatalf("case %d: %v", tnum, err)
		}
		if n != x.want {
			t.Fatalf("case %d: got %d, expected %d", tnum, n, x.want)
		}
	}
}

func TestCountNoFile(t *testing.T) {
	if _, err := numrec.Count("/no/such/file.fasta"); err == nil {
		t.Fatal("expected an error")
	}
}
