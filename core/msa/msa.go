// core/msa/msa.go
package msa

import (
	"errors"
	"fmt"
	"sort"

	"stockholm-core/seq"
)

// Shape violations reported by New.
var (
	ErrIndexMismatch       = errors.New("index length does not match sequence count")
	ErrDuplicateLabel      = errors.New("duplicate label in index")
	ErrUnequalLengths      = errors.New("sequences differ in length")
	ErrBadPositionalLength = errors.New("per-column metadata length does not match column count")
)

// MSA is a tabular multiple sequence alignment: equal-length sequences in a
// fixed order, addressable by position or by label. Metadata applies to the
// alignment as a whole; Positional holds per-column rows spanning every
// sequence, one byte per column, nil when absent.
type MSA struct {
	Metadata   map[string]string
	Positional map[string][]byte

	seqs    []seq.Sequence
	index   []string
	byLabel map[string]int
}

// New assembles an alignment and enforces its shape: one label per
// sequence, no repeated labels, equal sequence lengths, and every
// per-column row (on the sequences and on the alignment) exactly one value
// per column. Metadata may be empty but is kept as given; a nil map is
// normalized to an empty one.
func New(seqs []seq.Sequence, metadata map[string]string, positional map[string][]byte, index []string) (*MSA, error) {
	if len(index) != len(seqs) {
		return nil, fmt.Errorf("msa: %w: %d labels for %d sequences",
			ErrIndexMismatch, len(index), len(seqs))
	}
	cols := 0
	if len(seqs) > 0 {
		cols = seqs[0].Len()
	}
	for i, sq := range seqs {
		if sq.Len() != cols {
			return nil, fmt.Errorf("msa: %w: %q spans %d columns, want %d",
				ErrUnequalLengths, index[i], sq.Len(), cols)
		}
		for feature, row := range sq.Positional {
			if len(row) != cols {
				return nil, fmt.Errorf("msa: %w: feature %q on %q has %d values, want %d",
					ErrBadPositionalLength, feature, index[i], len(row), cols)
			}
		}
	}
	for feature, row := range positional {
		if len(row) != cols {
			return nil, fmt.Errorf("msa: %w: feature %q has %d values, want %d",
				ErrBadPositionalLength, feature, len(row), cols)
		}
	}
	byLabel := make(map[string]int, len(index))
	for i, label := range index {
		if _, dup := byLabel[label]; dup {
			return nil, fmt.Errorf("msa: %w: %q", ErrDuplicateLabel, label)
		}
		byLabel[label] = i
	}
	if metadata == nil {
		metadata = map[string]string{}
	}
	return &MSA{
		Metadata:   metadata,
		Positional: positional,
		seqs:       seqs,
		index:      index,
		byLabel:    byLabel,
	}, nil
}

// Len returns the number of sequences.
func (m *MSA) Len() int { return len(m.seqs) }

// Positions returns the number of alignment columns.
func (m *MSA) Positions() int {
	if len(m.seqs) == 0 {
		return 0
	}
	return m.seqs[0].Len()
}

// At returns the i-th sequence in first-seen order.
func (m *MSA) At(i int) seq.Sequence { return m.seqs[i] }

// Label returns the label of the i-th sequence.
func (m *MSA) Label(i int) string { return m.index[i] }

// Index returns a copy of the ordered label list.
func (m *MSA) Index() []string { return append([]string(nil), m.index...) }

// Lookup returns the sequence stored under label.
func (m *MSA) Lookup(label string) (seq.Sequence, bool) {
	i, ok := m.byLabel[label]
	if !ok {
		return seq.Sequence{}, false
	}
	return m.seqs[i], true
}

// PositionalFeatures lists the alignment-level per-column feature names in
// sorted order. Handy for deterministic output.
func (m *MSA) PositionalFeatures() []string {
	keys := make([]string, 0, len(m.Positional))
	for k := range m.Positional {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
