// internal/output/api_conv.go
package output

import (
	"sort"

	"stockholm-core/msa"
	"stockholm/pkg/api"
)

// ToAPIAlignment converts an alignment to its stable V1 schema. Per-column
// byte rows become strings so they serialize as text, not base64.
func ToAPIAlignment(m *msa.MSA, source string) api.AlignmentV1 {
	out := api.AlignmentV1{
		SourceFile:     source,
		SequenceCount:  m.Len(),
		PositionCount:  m.Positions(),
		Metadata:       m.Metadata,
		ColumnMetadata: stringRows(m.Positional),
		Sequences:      make([]api.SequenceV1, 0, m.Len()),
	}
	if len(out.Metadata) == 0 {
		out.Metadata = nil
	}
	for i := 0; i < m.Len(); i++ {
		sq := m.At(i)
		out.Sequences = append(out.Sequences, api.SequenceV1{
			Label:          m.Label(i),
			Chars:          sq.Chars,
			Metadata:       sq.Metadata,
			ColumnMetadata: stringRows(sq.Positional),
		})
	}
	return out
}

// ToAPIStats summarizes an alignment for the stats tool.
func ToAPIStats(m *msa.MSA, source string) api.StatsV1 {
	return api.StatsV1{
		SourceFile:    source,
		SequenceCount: m.Len(),
		PositionCount: m.Positions(),
		MetadataKeys:  len(m.Metadata),
		ColumnKeys:    len(m.Positional),
		Labels:        m.Index(),
	}
}

func stringRows(rows map[string][]byte) map[string]string {
	if len(rows) == 0 {
		return nil
	}
	out := make(map[string]string, len(rows))
	for k, v := range rows {
		out[k] = string(v)
	}
	return out
}

// sortedKeys is shared by the plain-text formatters.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
