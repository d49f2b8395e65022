// Package fasta provides random-access extraction of subsequences from
// single-record FASTA files without loading them into memory.
//
// The sequence body is assumed to be wrapped at one fixed width with a
// single-byte line terminator, as produced by standard FASTA writers. The
// width is taken from the first sequence line; later lines are not checked.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Handle is an open FASTA file ready for coordinate queries.
//
// A Handle owns its file and read cursor. It is not safe for concurrent
// use; open one Handle per goroutine instead.
type Handle struct {
	path      string
	file      *os.File
	reader    *bufio.Reader
	headerLen int64
	lineWidth int
	title     string
	logger    *zap.Logger
}

// Open opens the FASTA file at path and scans its header.
func Open(path string) (*Handle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailure, err)
	}

	reader := bufio.NewReader(file)
	info, err := scanHeader(reader)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Handle{
		path:      path,
		file:      file,
		reader:    reader,
		headerLen: info.length,
		lineWidth: info.lineWidth,
		title:     info.title,
		logger:    zap.NewNop(),
	}, nil
}

// SetLogger sets the logger used for debug messages.
func (h *Handle) SetLogger(l *zap.Logger) {
	h.logger = l
}

// Path returns the path the handle was opened with.
func (h *Handle) Path() string {
	return h.path
}

// HeaderLength returns the byte length of the header and comment lines.
func (h *Handle) HeaderLength() int64 {
	return h.headerLen
}

// LineWidth returns the number of residues per wrapped sequence line.
func (h *Handle) LineWidth() int {
	return h.lineWidth
}

// Header returns the first '>' line without its marker, or "" if the file
// only has comment lines.
func (h *Handle) Header() string {
	return h.title
}

// GetSequence returns residues start through end, 1-based and inclusive.
// Non-alphabet bytes between them are skipped. With caps set the result is
// uppercased.
func (h *Handle) GetSequence(start, end int64, caps bool) (string, error) {
	if h.file == nil {
		return "", ErrClosed
	}
	if start < 1 || end < start {
		return "", fmt.Errorf("%w: %d-%d", ErrInvalidRange, start, end)
	}

	offset := ByteOffset(h.headerLen, h.lineWidth, start)
	if offset < h.headerLen {
		return "", fmt.Errorf("%w: start %d", ErrCoordinateOutOfBounds, start)
	}
	if _, err := h.file.Seek(offset, io.SeekStart); err != nil {
		return "", fmt.Errorf("seek to %d: %w", offset, err)
	}
	h.reader.Reset(h.file)
	h.logger.Debug("extracting",
		zap.String("path", h.path),
		zap.Int64("start", start),
		zap.Int64("end", end),
		zap.Int64("offset", offset))

	want := end - start + 1
	seq := make([]byte, 0, min(want, 1<<20))
	for int64(len(seq)) < want {
		b, err := h.reader.ReadByte()
		if err == io.EOF {
			return "", fmt.Errorf("%w: %d-%d (sequence ends after %d residues from %d)",
				ErrCoordinateOutOfBounds, start, end, len(seq), start)
		}
		if err != nil {
			return "", fmt.Errorf("read sequence: %w", err)
		}
		if !IsSequenceByte(b) {
			continue
		}
		seq = append(seq, Normalize(b, caps))
	}

	return string(seq), nil
}

// Close releases the file. Calling Close more than once is a no-op.
func (h *Handle) Close() error {
	if h.file == nil {
		return nil
	}
	err := h.file.Close()
	h.file = nil
	h.reader = nil
	return err
}
