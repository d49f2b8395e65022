// Package output provides formatters for extracted sequences.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/inodb/vibe-fasta/internal/region"
)

// Supported output formats.
const (
	FormatFASTA = "fasta"
	FormatTab   = "tab"
	FormatRaw   = "raw"
)

// DefaultWidth is the FASTA line width used when none is configured.
const DefaultWidth = 60

// Writer writes extracted sequences.
type Writer interface {
	WriteHeader() error
	Write(r region.Region, seq string) error
	Flush() error
}

// NewWriter returns a writer for format. source labels unnamed regions
// and is usually the first word of the input FASTA header.
func NewWriter(format string, w io.Writer, source string, width int) (Writer, error) {
	switch strings.ToLower(format) {
	case FormatFASTA, "fa":
		return NewFASTAWriter(w, source, width), nil
	case FormatTab, "tsv":
		return NewTabWriter(w, source), nil
	case FormatRaw:
		return NewRawWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// SourceName returns the sequence identifier from a FASTA header line,
// i.e. its first whitespace-delimited word.
func SourceName(header string) string {
	if fields := strings.Fields(header); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// label names a region in output.
func label(source string, r region.Region) string {
	if r.Name != "" || source == "" {
		return r.String()
	}
	return fmt.Sprintf("%s:%d-%d", source, r.Start, r.End)
}
