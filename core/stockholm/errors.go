// core/stockholm/errors.go
package stockholm

import (
	"errors"
	"fmt"
)

// Every parse failure wraps exactly one of these sentinels; callers branch
// with errors.Is while the message carries the offending line verbatim.
// All of them abort the parse. There is no line-level recovery.
var (
	ErrDuplicateSequenceLabel         = errors.New("multiple data lines under same name")
	ErrUndeclaredSequence             = errors.New("markup line references nonexistent data")
	ErrDuplicateColumnFeature         = errors.New("duplicate GC label")
	ErrDuplicateSequenceColumnFeature = errors.New("duplicate GR label")
	ErrDuplicateSequenceFeature       = errors.New("duplicate GS label")
	ErrMalformedLine                  = errors.New("malformed line")
	ErrEmptyAlignment                 = errors.New("no data present in file")
)

func malformed(line, why string) error {
	return fmt.Errorf("stockholm: %w: %s: %q", ErrMalformedLine, why, line)
}

func undeclared(line, name string) error {
	return fmt.Errorf("stockholm: %w: %q: %q", ErrUndeclaredSequence, name, line)
}
