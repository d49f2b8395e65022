package output

import (
	"bufio"
	"io"

	"github.com/inodb/vibe-fasta/internal/region"
)

// FASTAWriter writes each sequence as a FASTA record wrapped at a fixed width.
type FASTAWriter struct {
	w      *bufio.Writer
	source string
	width  int
}

// NewFASTAWriter creates a FASTA writer. A width <= 0 writes each sequence
// on a single line.
func NewFASTAWriter(w io.Writer, source string, width int) *FASTAWriter {
	return &FASTAWriter{
		w:      bufio.NewWriter(w),
		source: source,
		width:  width,
	}
}

// WriteHeader is a no-op; FASTA has no file header.
func (fw *FASTAWriter) WriteHeader() error {
	return nil
}

// Write writes a single record.
func (fw *FASTAWriter) Write(r region.Region, seq string) error {
	if _, err := fw.w.WriteString(">" + label(fw.source, r) + "\n"); err != nil {
		return err
	}

	width := fw.width
	if width <= 0 {
		width = len(seq)
	}
	for i := 0; i < len(seq); i += width {
		if _, err := fw.w.WriteString(seq[i:min(i+width, len(seq))]); err != nil {
			return err
		}
		if err := fw.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes any buffered data to the underlying writer.
func (fw *FASTAWriter) Flush() error {
	return fw.w.Flush()
}
