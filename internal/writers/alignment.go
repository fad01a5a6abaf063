// internal/writers/alignment.go
package writers

import (
	"fmt"
	"io"

	"stockholm/internal/output"
	"stockholm/internal/pretty"
)

func init() {
	Register("text", func(w io.Writer, p Payload) error {
		return output.WriteTSV(w, p.MSA, p.Source, p.Header)
	})
	Register("json", func(w io.Writer, p Payload) error {
		return output.WriteJSON(w, p.MSA, p.Source)
	})
	Register("fasta", func(w io.Writer, p Payload) error {
		return output.WriteFASTA(w, p.MSA)
	})
	Register("pretty", func(w io.Writer, p Payload) error {
		opt := pretty.DefaultOptions
		opt.Color = p.Color
		_, err := fmt.Fprint(w, pretty.Render(p.MSA, opt))
		return err
	})
}
