package input

import (
	"io"
	"strings"
	"testing"
	"time"
)

func TestReaderForwardsOnlyDigits(t *testing.T) {
	r := New(strings.NewReader("a1\r2\x1b[A9x"))
	r.Start()

	var got []byte
	for b := range r.Digits() {
		got = append(got, b)
	}
	if string(got) != "129" {
		t.Fatalf("digits = %q, want %q", got, "129")
	}

	select {
	case <-r.Done():
	case <-time.After(time.Second):
		t.Fatal("reader did not exit on EOF")
	}
}

func TestReaderStopsAfterNextKeystroke(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	r := New(pr)
	r.Start()

	if _, err := pw.Write([]byte("5")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	select {
	case b := <-r.Digits():
		if b != '5' {
			t.Fatalf("got %q, want '5'", b)
		}
	case <-time.After(time.Second):
		t.Fatal("digit was not forwarded")
	}

	r.Stop()
	// The reader is parked in Read; one more keystroke wakes it and the stop
	// flag is honored before the byte is forwarded.
	if _, err := pw.Write([]byte("7")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	select {
	case <-r.Done():
	case <-time.After(time.Second):
		t.Fatal("reader did not stop")
	}
	if b, ok := <-r.Digits(); ok {
		t.Fatalf("unexpected digit %q after stop", b)
	}
}

func TestReaderExitsOnError(t *testing.T) {
	pr, pw := io.Pipe()
	r := New(pr)
	r.Start()

	_ = pw.CloseWithError(io.ErrUnexpectedEOF)
	select {
	case <-r.Done():
	case <-time.After(time.Second):
		t.Fatal("reader did not exit on read error")
	}
}
