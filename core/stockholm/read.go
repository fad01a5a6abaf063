// core/stockholm/read.go
package stockholm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"stockholm-core/msa"
	"stockholm-core/seq"
)

// Constructor builds a validated sequence value from raw aligned characters
// plus optional per-sequence metadata and per-column metadata. A nil map
// means the annotation is absent rather than present-and-empty. The seq
// package constructors (seq.DNA, seq.RNA, seq.Protein, seq.Text) satisfy
// this contract.
type Constructor func(chars string, metadata map[string]string, positional map[string][]byte) (seq.Sequence, error)

// GSPolicy controls how repeated #=GS lines for one sequence are treated.
type GSPolicy int

const (
	// GSFirstBlockWins reproduces the modeled source behavior: GS lines are
	// stored only while the sequence's metadata map is still empty, so every
	// GS line after the first stored one is dropped without complaint.
	GSFirstBlockWins GSPolicy = iota
	// GSStrict records each distinct feature and fails on a repeat.
	GSStrict
)

// Options tune a single Read call.
type Options struct {
	GS GSPolicy
}

// Option mutates Options.
type Option func(*Options)

// WithGSPolicy selects the #=GS duplicate-handling policy.
func WithGSPolicy(p GSPolicy) Option {
	return func(o *Options) { o.GS = p }
}

// record accumulates one sequence's data between the two passes. The
// character string is set once, at first sighting, and never rewritten.
type record struct {
	chars      string
	metadata   map[string]string
	positional map[string][]byte
}

// session owns all intermediate state for one Read call. Label order is the
// order of first appearance among data lines; markup lines never add labels.
type session struct {
	opts     Options
	order    []string
	records  map[string]*record
	metadata map[string]string // #=GF, alignment-wide
	colMeta  map[string][]byte // #=GC, per column
}

func newSession(opts ...Option) *session {
	s := &session{
		records:  map[string]*record{},
		metadata: map[string]string{},
		colMeta:  map[string][]byte{},
	}
	for _, o := range opts {
		o(&s.opts)
	}
	return s
}

// Read parses a Stockholm stream into an alignment. Two sequential passes
// run over the same input: the first collects data lines, the second
// dispatches markup; r must therefore be rewindable. The caller supplies
// the sequence constructor; content validation belongs to it, not here.
//
// Any structural violation aborts the whole parse with an error wrapping
// one of the sentinel errors in this package.
func Read(r io.ReadSeeker, construct Constructor, opts ...Option) (*msa.MSA, error) {
	s := newSession(opts...)
	if err := s.scanData(r); err != nil {
		return nil, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("stockholm: rewind between passes: %w", err)
	}
	if err := s.scanMarkup(r); err != nil {
		return nil, err
	}
	return s.assemble(construct)
}

// scanData is the first pass: data lines only, markup ignored entirely.
func (s *session) scanData(r io.Reader) error {
	sc := newScanner(r)
	for sc.Scan() {
		line := chomp(sc.Text())
		if Classify(line) != KindData {
			continue
		}
		if err := s.parseData(line); err != nil {
			return err
		}
	}
	return sc.Err()
}

// scanMarkup is the second pass: markup lines only, data ignored entirely.
// A markup line naming a label absent from the data pass fails here even if
// the physical file listed it first; the data pass already ran to the end.
func (s *session) scanMarkup(r io.Reader) error {
	sc := newScanner(r)
	for sc.Scan() {
		line := chomp(sc.Text())
		var err error
		switch Classify(line) {
		case KindGF:
			err = s.parseGF(line)
		case KindGS:
			err = s.parseGS(line)
		case KindGR:
			err = s.parseGR(line)
		case KindGC:
			err = s.parseGC(line)
		}
		if err != nil {
			return err
		}
	}
	return sc.Err()
}

// assemble turns the session into the final alignment: one sequence per
// label in first-seen order, empty annotation maps normalized to nil, the
// label list passed through as the index. Alignment metadata is handed over
// as-is even when empty; column metadata collapses to nil when empty.
func (s *session) assemble(construct Constructor) (*msa.MSA, error) {
	if len(s.order) == 0 {
		return nil, fmt.Errorf("stockholm: %w", ErrEmptyAlignment)
	}
	seqs := make([]seq.Sequence, 0, len(s.order))
	for _, name := range s.order {
		rec := s.records[name]
		md := rec.metadata
		if len(md) == 0 {
			md = nil
		}
		pmd := rec.positional
		if len(pmd) == 0 {
			pmd = nil
		}
		sq, err := construct(rec.chars, md, pmd)
		if err != nil {
			return nil, fmt.Errorf("stockholm: sequence %q: %w", name, err)
		}
		seqs = append(seqs, sq)
	}
	colMeta := s.colMeta
	if len(colMeta) == 0 {
		colMeta = nil
	}
	index := append([]string(nil), s.order...)
	return msa.New(seqs, s.metadata, colMeta, index)
}

// Alignment rows can run long; give the scanner room.
func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	return sc
}

func chomp(line string) string {
	return strings.TrimSuffix(line, "\r")
}
