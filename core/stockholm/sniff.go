// core/stockholm/sniff.go
package stockholm

import (
	"bufio"
	"io"
)

// Signature is the fixed first-line token, version string included.
const Signature = "# STOCKHOLM 1.0"

// Sniff reports whether the stream opens with the Stockholm signature: the
// first line's leading 15 characters must equal Signature exactly. An empty
// stream, or any other first line, smells wrong.
//
// Sniff reads only the first line. Buffering may consume further bytes, so
// the caller must restore the stream position before the real parse.
func Sniff(r io.Reader) bool {
	br := bufio.NewReader(r)
	line, err := br.ReadString('\n')
	if line == "" && err != nil {
		return false
	}
	if len(line) < len(Signature) {
		return false
	}
	return line[:len(Signature)] == Signature
}
