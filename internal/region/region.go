// Package region parses 1-based inclusive coordinate windows.
package region

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed reports a region that cannot be parsed.
var ErrMalformed = errors.New("malformed region")

// Region is a 1-based inclusive window into a sequence.
type Region struct {
	Name  string // optional label, carried through to output
	Start int64
	End   int64
}

// String formats the region as name:start-end, or start-end without a name.
func (r Region) String() string {
	if r.Name == "" {
		return fmt.Sprintf("%d-%d", r.Start, r.End)
	}
	return fmt.Sprintf("%s:%d-%d", r.Name, r.Start, r.End)
}

// Parse parses "start-end" or "name:start-end". A single coordinate
// ("name:pos" or "pos") yields a one-residue region. Thousands separators
// are accepted.
func Parse(s string) (Region, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Region{}, fmt.Errorf("%w: empty", ErrMalformed)
	}

	var r Region
	coords := s
	if idx := strings.LastIndex(s, ":"); idx != -1 {
		r.Name = s[:idx]
		coords = s[idx+1:]
	}

	startStr, endStr, found := strings.Cut(coords, "-")
	if !found {
		endStr = startStr
	}

	var err error
	if r.Start, err = parseCoord(startStr); err != nil {
		return Region{}, fmt.Errorf("%w: %q: %w", ErrMalformed, s, err)
	}
	if r.End, err = parseCoord(endStr); err != nil {
		return Region{}, fmt.Errorf("%w: %q: %w", ErrMalformed, s, err)
	}

	return r, nil
}

// FromFields builds a region from "start end" or "name start end" fields.
func FromFields(fields []string) (Region, error) {
	var r Region
	switch len(fields) {
	case 0, 1:
		return Region{}, fmt.Errorf("%w: expected start and end, got %d fields", ErrMalformed, len(fields))
	case 2:
	default:
		r.Name = fields[0]
		fields = fields[1:3]
	}

	var err error
	if r.Start, err = parseCoord(fields[0]); err != nil {
		return Region{}, fmt.Errorf("%w: start: %w", ErrMalformed, err)
	}
	if r.End, err = parseCoord(fields[1]); err != nil {
		return Region{}, fmt.Errorf("%w: end: %w", ErrMalformed, err)
	}
	return r, nil
}

func parseCoord(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, errors.New("missing coordinate")
	}
	return strconv.ParseInt(s, 10, 64)
}
