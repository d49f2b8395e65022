package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/inodb/vibe-fasta/internal/region"
)

// TabWriter writes sequences in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	source  string
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer, source string) *TabWriter {
	return &TabWriter{
		w:      bufio.NewWriter(w),
		source: source,
		columns: []string{
			"#Name",
			"Start",
			"End",
			"Length",
			"Sequence",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single sequence row.
func (tw *TabWriter) Write(r region.Region, seq string) error {
	name := r.Name
	if name == "" {
		name = tw.source
	}
	if name == "" {
		name = "-"
	}

	values := []string{
		name,
		strconv.FormatInt(r.Start, 10),
		strconv.FormatInt(r.End, 10),
		strconv.Itoa(len(seq)),
		seq,
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
