// internal/output/common.go
package output

// TSVHeader is the canonical header row for text/TSV alignment output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source_file\tlabel\tsequence"

// StatsTSVHeader is the canonical header row for stats output.
const StatsTSVHeader = "source_file\tsequences\tpositions\tmetadata_keys\tcolumn_keys"
