// core/stockholm/classify.go
package stockholm

import "strings"

// Kind classifies a physical line of a Stockholm file.
type Kind int

const (
	KindIgnore Kind = iota // blank, terminator, unrecognized comment
	KindData
	KindGF
	KindGS
	KindGR
	KindGC
)

// Markup markers and the record terminator token.
const (
	markerGF = "#=GF"
	markerGS = "#=GS"
	markerGR = "#=GR"
	markerGC = "#=GC"

	terminator = "//"
)

// Classify decides what a raw line is. It is pure and is invoked on every
// physical line during both passes.
func Classify(line string) Kind {
	switch {
	case strings.HasPrefix(line, markerGF):
		return KindGF
	case strings.HasPrefix(line, markerGS):
		return KindGS
	case strings.HasPrefix(line, markerGR):
		return KindGR
	case strings.HasPrefix(line, markerGC):
		return KindGC
	case IsData(line):
		return KindData
	}
	return KindIgnore
}

// IsData reports whether a line carries sequence characters: any line that is
// not blank, does not start with '#', and does not start with the terminator.
func IsData(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	return !strings.HasPrefix(line, "#") && !strings.HasPrefix(line, terminator)
}
