// internal/output/fasta.go
package output

import (
	"fmt"
	"io"

	"stockholm-core/msa"
)

// WriteFASTA writes the aligned rows as FASTA records, gaps included.
// Per-sequence metadata lands on the header line as sorted key=value pairs.
func WriteFASTA(w io.Writer, m *msa.MSA) error {
	for i := 0; i < m.Len(); i++ {
		sq := m.At(i)
		if _, err := fmt.Fprintf(w, ">%s", m.Label(i)); err != nil {
			return err
		}
		for _, k := range sortedKeys(sq.Metadata) {
			if _, err := fmt.Fprintf(w, " %s=%s", k, sq.Metadata[k]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "\n%s\n", sq.Chars); err != nil {
			return err
		}
	}
	return nil
}
