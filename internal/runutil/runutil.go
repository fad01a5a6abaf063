// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"io"
	"os"
)

// Open returns a rewindable handle for path. The parser makes two passes
// over its input, so plain files are opened directly and "-" spools stdin
// into an unlinked temporary file that supports seeking. Close releases
// the spool.
func Open(path string) (io.ReadSeekCloser, error) {
	if path != "-" {
		return os.Open(path)
	}
	return spool(os.Stdin)
}

func spool(r io.Reader) (io.ReadSeekCloser, error) {
	tmp, err := os.CreateTemp("", "stockholm-stdin-*")
	if err != nil {
		return nil, fmt.Errorf("spool stdin: %w", err)
	}
	// Unlink immediately; the fd keeps the data alive until Close.
	name := tmp.Name()
	_ = os.Remove(name)
	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("spool stdin: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		_ = tmp.Close()
		return nil, err
	}
	return tmp, nil
}
