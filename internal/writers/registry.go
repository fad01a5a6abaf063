// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"stockholm-core/msa"
)

// Payload carries one parsed alignment plus the rendering knobs a writer
// may honor.
type Payload struct {
	MSA    *msa.MSA
	Source string
	Header bool
	Color  bool
}

// Alignment is the writer registry (format → handler). Writer files
// register themselves from init() blocks; registration is last-wins.
var Alignment = map[string]func(w io.Writer, p Payload) error{}

// Register installs a handler for a format name.
func Register(format string, fn func(io.Writer, Payload) error) {
	Alignment[format] = fn
}

// Write dispatches to the registered handler for format.
func Write(format string, w io.Writer, p Payload) error {
	fn, ok := Alignment[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, p)
}

// Formats lists the registered format names, unordered.
func Formats() []string {
	out := make([]string, 0, len(Alignment))
	for k := range Alignment {
		out = append(out, k)
	}
	return out
}
