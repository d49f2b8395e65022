package fasta

import "errors"

// Error kinds returned by this package. Match them with errors.Is; returned
// errors carry the path or coordinates that triggered them.
var (
	// ErrOpenFailure reports that the FASTA path could not be opened for reading.
	ErrOpenFailure = errors.New("open failure")

	// ErrInvalidFormat reports a file without a sequence line, or whose first
	// sequence line holds no sequence characters.
	ErrInvalidFormat = errors.New("invalid FASTA format")

	// ErrCoordinateOutOfBounds reports that the end of the file was reached
	// before the requested window was filled.
	ErrCoordinateOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidRange reports start < 1 or end < start.
	ErrInvalidRange = errors.New("invalid range")

	// ErrClosed reports use of a handle after Close.
	ErrClosed = errors.New("handle is closed")
)
