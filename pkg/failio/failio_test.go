package failio_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"protfasta/pkg/failio"
)

func TestReader(t *testing.T) {
	rdr := failio.NewReader(strings.NewReader("0123456789"), 4)
	got, err := io.ReadAll(rdr)
	if !errors.Is(err, failio.ErrBroken) {
		t.Fatalf("expected ErrBroken, got %v", err)
	}
	if string(got) != "0123" {
		t.Fatalf("expected the first 4 bytes, got %q", got)
	}
}

func TestWriter(t *testing.T) {
	var b bytes.Buffer
	w := failio.NewWriter(&b, 4)
	if n, err := w.Write([]byte("01")); n != 2 || err != nil {
		t.Fatalf("short write within budget: %d, %v", n, err)
	}
	n, err := w.Write([]byte("23456"))
	if !errors.Is(err, failio.ErrBroken) {
		t.Fatalf("expected ErrBroken, got %v", err)
	}
	if n != 2 || b.String() != "0123" {
		t.Fatalf("expected exactly 4 bytes through, got %q", b.String())
	}
}
