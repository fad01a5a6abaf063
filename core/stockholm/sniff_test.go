package stockholm

import (
	"strings"
	"testing"
)

func TestSniff(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"# STOCKHOLM 1.0\nseq1 ACGT\n//\n", true},
		{"# STOCKHOLM 1.0", true},                 // no trailing newline
		{"# STOCKHOLM 1.0 extra trailing text\n", true}, // only first 15 bytes checked
		{"# STOCKHOLM 1.", false},                 // too short
		{"# stockholm 1.0\n", false},              // case matters
		{"#STOCKHOLM 1.0\n", false},
		{"seq1 ACGT\n", false},
		{"", false}, // empty stream
	}
	for _, c := range cases {
		if got := Sniff(strings.NewReader(c.in)); got != c.want {
			t.Fatalf("Sniff(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
