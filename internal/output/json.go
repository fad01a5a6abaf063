// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"stockholm-core/msa"
)

// WriteJSON writes the stable V1 alignment document, indented.
func WriteJSON(w io.Writer, m *msa.MSA, source string) error {
	return encodePretty(w, ToAPIAlignment(m, source))
}

// WriteStatsJSON writes the stable V1 stats document, indented.
func WriteStatsJSON(w io.Writer, m *msa.MSA, source string) error {
	return encodePretty(w, ToAPIStats(m, source))
}

func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
