package output

import (
	"bufio"
	"io"

	"github.com/inodb/vibe-fasta/internal/region"
)

// RawWriter writes one bare sequence per line.
type RawWriter struct {
	w *bufio.Writer
}

// NewRawWriter creates a raw writer.
func NewRawWriter(w io.Writer) *RawWriter {
	return &RawWriter{w: bufio.NewWriter(w)}
}

// WriteHeader is a no-op.
func (rw *RawWriter) WriteHeader() error {
	return nil
}

// Write writes seq followed by a newline.
func (rw *RawWriter) Write(_ region.Region, seq string) error {
	if _, err := rw.w.WriteString(seq); err != nil {
		return err
	}
	return rw.w.WriteByte('\n')
}

// Flush flushes any buffered data to the underlying writer.
func (rw *RawWriter) Flush() error {
	return rw.w.Flush()
}
