// core/seq/alphabet.go
package seq

import (
	"fmt"
	"strings"
)

// Alphabet is the grammar of a sequence type: canonical residues,
// degenerate codes with the canonical set each one stands for, and the gap
// characters an aligned row may carry.
type Alphabet struct {
	Name       string
	Canonical  string
	Degenerate map[byte]string
	Gaps       string
}

// DNAAlphabet covers the IUPAC DNA codes.
var DNAAlphabet = Alphabet{
	Name:      "DNA",
	Canonical: "ACGT",
	Degenerate: map[byte]string{
		'R': "AG", 'Y': "CT", 'S': "CG", 'W': "AT", 'K': "GT", 'M': "AC",
		'B': "CGT", 'D': "AGT", 'H': "ACT", 'V': "ACG", 'N': "ACGT",
	},
	Gaps: "-.",
}

// RNAAlphabet is DNAAlphabet with U in place of T.
var RNAAlphabet = Alphabet{
	Name:      "RNA",
	Canonical: "ACGU",
	Degenerate: map[byte]string{
		'R': "AG", 'Y': "CU", 'S': "CG", 'W': "AU", 'K': "GU", 'M': "AC",
		'B': "CGU", 'D': "AGU", 'H': "ACU", 'V': "ACG", 'N': "ACGU",
	},
	Gaps: "-.",
}

// ProteinAlphabet covers the 20 amino acids, stop ('*'), and the IUPAC
// ambiguity codes B, Z and X.
var ProteinAlphabet = Alphabet{
	Name:      "protein",
	Canonical: "ACDEFGHIKLMNPQRSTVWY*",
	Degenerate: map[byte]string{
		'B': "DN", 'Z': "EQ", 'X': "ACDEFGHIKLMNPQRSTVWY",
	},
	Gaps: "-.",
}

// Contains reports whether c is legal under a, ignoring case.
func (a Alphabet) Contains(c byte) bool {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if strings.IndexByte(a.Canonical, c) >= 0 || strings.IndexByte(a.Gaps, c) >= 0 {
		return true
	}
	_, ok := a.Degenerate[c]
	return ok
}

// Validate checks every character of s against the alphabet. Positions in
// error messages are 1-based.
func (a Alphabet) Validate(s string) error {
	for i := 0; i < len(s); i++ {
		if !a.Contains(s[i]) {
			return fmt.Errorf("%s: invalid character %q at position %d", a.Name, s[i], i+1)
		}
	}
	return nil
}
