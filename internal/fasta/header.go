package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

const (
	headerMarker  = '>'
	commentMarker = ';'
)

// headerInfo is what the header scan learns about a file.
type headerInfo struct {
	length    int64  // bytes of header and comment lines, terminators included
	lineWidth int    // residues on the first sequence line
	title     string // first '>' line without the marker
}

func isHeaderLine(line []byte) bool {
	return len(line) > 0 && (line[0] == headerMarker || line[0] == commentMarker)
}

// scanHeader consumes the leading '>' and ';' lines of r and the first
// sequence line after them. Nothing past that line is read.
func scanHeader(r *bufio.Reader) (headerInfo, error) {
	var info headerInfo
	haveTitle := false

	// Check for gzip magic number (0x1f, 0x8b); compressed files cannot be
	// addressed by byte offset.
	if magic, _ := r.Peek(2); len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		return info, fmt.Errorf("%w: gzip-compressed input is not supported", ErrInvalidFormat)
	}

	for {
		line, err := r.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return info, fmt.Errorf("read header: %w", err)
		}
		if len(line) == 0 {
			return info, fmt.Errorf("%w: no sequence line", ErrInvalidFormat)
		}

		if isHeaderLine(line) {
			if err == io.EOF {
				// Header runs to the end of the file.
				return info, fmt.Errorf("%w: no sequence line", ErrInvalidFormat)
			}
			info.length += int64(len(line))
			if !haveTitle && line[0] == headerMarker {
				info.title = string(bytes.TrimSpace(line[1:]))
				haveTitle = true
			}
			continue
		}

		info.lineWidth = countSequenceBytes(line)
		if info.lineWidth == 0 {
			return info, fmt.Errorf("%w: first sequence line is empty", ErrInvalidFormat)
		}
		return info, nil
	}
}
