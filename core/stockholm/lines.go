// core/stockholm/lines.go
package stockholm

import (
	"fmt"
	"strings"
)

// parseGF handles "#=GF <feature> <data>". The split is on single spaces
// with the data field left intact, so internal (and leading) runs of spaces
// survive into the stored value. A repeated feature concatenates, separated
// by one space, in line order.
func (s *session) parseGF(line string) error {
	f := strings.SplitN(line, " ", 3)
	if len(f) < 3 {
		return malformed(line, "GF needs marker, feature and data")
	}
	feature, data := f[1], f[2]
	if prev, ok := s.metadata[feature]; ok {
		s.metadata[feature] = prev + " " + data
	} else {
		s.metadata[feature] = data
	}
	return nil
}

// parseGS handles "#=GS <name> <feature> <data>". The named sequence must
// already exist from the data pass.
//
// Under GSFirstBlockWins a line is stored only while the record's metadata
// map is still empty; later GS lines for that sequence are silently dropped.
// That reproduces the source behavior this parser models. GSStrict stores
// every distinct feature and rejects a repeat.
func (s *session) parseGS(line string) error {
	f := strings.SplitN(line, " ", 4)
	if len(f) < 4 {
		return malformed(line, "GS needs marker, name, feature and data")
	}
	name, feature, data := f[1], f[2], f[3]
	rec, ok := s.records[name]
	if !ok {
		return undeclared(line, name)
	}
	switch s.opts.GS {
	case GSStrict:
		if _, dup := rec.metadata[feature]; dup {
			return fmt.Errorf("stockholm: %w: %q under %q: %q",
				ErrDuplicateSequenceFeature, feature, name, line)
		}
		rec.metadata[feature] = data
	default:
		if len(rec.metadata) == 0 {
			rec.metadata[feature] = data
		}
	}
	return nil
}

// parseGR handles "#=GR <name> <feature> <columns>", one character per
// alignment column. A feature may appear once per sequence name.
func (s *session) parseGR(line string) error {
	f := strings.Fields(line)
	if len(f) < 4 {
		return malformed(line, "GR needs marker, name, feature and columns")
	}
	name, feature, cols := f[1], f[2], f[3]
	rec, ok := s.records[name]
	if !ok {
		return undeclared(line, name)
	}
	if _, dup := rec.positional[feature]; dup {
		return fmt.Errorf("stockholm: %w: %q under %q: %q",
			ErrDuplicateSequenceColumnFeature, feature, name, line)
	}
	rec.positional[feature] = []byte(cols)
	return nil
}

// parseGC handles "#=GC <feature> <columns>". A feature may appear once in
// the whole file.
func (s *session) parseGC(line string) error {
	f := strings.Fields(line)
	if len(f) < 3 {
		return malformed(line, "GC needs marker, feature and columns")
	}
	feature, cols := f[1], f[2]
	if _, dup := s.colMeta[feature]; dup {
		return fmt.Errorf("stockholm: %w: %q: %q", ErrDuplicateColumnFeature, feature, line)
	}
	s.colMeta[feature] = []byte(cols)
	return nil
}

// parseData handles a sequence line: name, characters, anything further
// ignored. A name may appear on one data line only.
func (s *session) parseData(line string) error {
	f := strings.Fields(line)
	if len(f) < 2 {
		return malformed(line, "data line needs a name and characters")
	}
	name := f[0]
	if _, dup := s.records[name]; dup {
		return fmt.Errorf("stockholm: %w: %q: %q", ErrDuplicateSequenceLabel, name, line)
	}
	s.records[name] = &record{
		chars:      f[1],
		metadata:   map[string]string{},
		positional: map[string][]byte{},
	}
	s.order = append(s.order, name)
	return nil
}
