// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"stockholm-core/msa"
)

// WriteTSV writes one tab-delimited row per sequence.
func WriteTSV(w io.Writer, m *msa.MSA, source string, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for i := 0; i < m.Len(); i++ {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", source, m.Label(i), m.At(i).Chars); err != nil {
			return err
		}
	}
	return nil
}

// WriteStatsTSV writes one summary row per alignment.
func WriteStatsTSV(w io.Writer, m *msa.MSA, source string, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, StatsTSVHeader); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
		source, m.Len(), m.Positions(), len(m.Metadata), len(m.Positional))
	return err
}
