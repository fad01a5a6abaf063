// core/seq/seq.go
package seq

// Sequence is one aligned row: its characters plus optional annotations.
// A nil Metadata or Positional map means the annotation is absent, which is
// distinct from present-and-empty. Chars is never rewritten after
// construction; each Positional value holds one byte per alignment column.
type Sequence struct {
	Chars      string
	Metadata   map[string]string
	Positional map[string][]byte
}

// Len returns the number of alignment columns the row spans.
func (s Sequence) Len() int { return len(s.Chars) }

// Text builds a sequence with no grammar: any characters are accepted.
func Text(chars string, metadata map[string]string, positional map[string][]byte) (Sequence, error) {
	return Sequence{Chars: chars, Metadata: metadata, Positional: positional}, nil
}

// DNA builds a sequence validated against the IUPAC DNA alphabet.
func DNA(chars string, metadata map[string]string, positional map[string][]byte) (Sequence, error) {
	return grammared(DNAAlphabet, chars, metadata, positional)
}

// RNA builds a sequence validated against the IUPAC RNA alphabet.
func RNA(chars string, metadata map[string]string, positional map[string][]byte) (Sequence, error) {
	return grammared(RNAAlphabet, chars, metadata, positional)
}

// Protein builds a sequence validated against the protein alphabet.
func Protein(chars string, metadata map[string]string, positional map[string][]byte) (Sequence, error) {
	return grammared(ProteinAlphabet, chars, metadata, positional)
}

func grammared(a Alphabet, chars string, metadata map[string]string, positional map[string][]byte) (Sequence, error) {
	if err := a.Validate(chars); err != nil {
		return Sequence{}, err
	}
	return Sequence{Chars: chars, Metadata: metadata, Positional: positional}, nil
}
