package main

import (
	"strings"
	"testing"
)

func TestReadLineLeavesTrailingInputUnread(t *testing.T) {
	src := strings.NewReader("5\n123")
	line, err := readLine(src)
	if err != nil {
		t.Fatalf("readLine failed: %v", err)
	}
	if line != "5" {
		t.Fatalf("line = %q, want %q", line, "5")
	}
	// Bytes typed after the newline must stay readable for whoever opens
	// stdin next.
	if src.Len() != 3 {
		t.Fatalf("%d bytes left unread, want 3", src.Len())
	}
}

func TestReadLine(t *testing.T) {
	cases := []struct {
		name, in, want string
		wantErr        bool
	}{
		{"crlf", "7\r\n", "7\r", false},
		{"eof without newline", "q", "q", false},
		{"empty stream", "", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := readLine(strings.NewReader(tc.in))
			if tc.wantErr != (err != nil) {
				t.Fatalf("err = %v, wantErr = %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("line = %q, want %q", got, tc.want)
			}
		})
	}
}
