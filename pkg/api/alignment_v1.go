// pkg/api/alignment_v1.go
package api

// AlignmentV1 is the stable JSON schema for a parsed alignment.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Per-column rows are strings (one character per column), not byte arrays.
type AlignmentV1 struct {
	SourceFile     string            `json:"source_file,omitempty"`
	SequenceCount  int               `json:"sequence_count"`
	PositionCount  int               `json:"position_count"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	ColumnMetadata map[string]string `json:"column_metadata,omitempty"`
	Sequences      []SequenceV1      `json:"sequences"`
}

// SequenceV1 is one aligned row of AlignmentV1, in first-seen order.
type SequenceV1 struct {
	Label          string            `json:"label"`
	Chars          string            `json:"chars"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	ColumnMetadata map[string]string `json:"column_metadata,omitempty"`
}

// StatsV1 is the stable JSON schema for per-file summaries.
type StatsV1 struct {
	SourceFile    string   `json:"source_file"`
	SequenceCount int      `json:"sequence_count"`
	PositionCount int      `json:"position_count"`
	MetadataKeys  int      `json:"metadata_keys"`
	ColumnKeys    int      `json:"column_keys"`
	Labels        []string `json:"labels"`
}
