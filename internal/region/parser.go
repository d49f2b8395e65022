package region

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parser reads regions from a whitespace-separated region file.
// Each line is "start end" or "name start end"; further columns are
// ignored. Blank lines and lines starting with '#' are skipped.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	lineNumber int
}

// NewParser opens a region file. Use "-" for stdin.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open region file: %w", err)
	}

	p := NewParserFromReader(file)
	p.file = file
	return p, nil
}

// NewParserFromReader creates a parser reading from r.
func NewParserFromReader(r io.Reader) *Parser {
	return &Parser{reader: bufio.NewReader(r)}
}

// Next returns the next region, or nil, nil when the input is exhausted.
func (p *Parser) Next() (*Region, error) {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read line %d: %w", p.lineNumber+1, err)
		}
		if line == "" && err == io.EOF {
			return nil, nil
		}
		p.lineNumber++

		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			if err == io.EOF {
				return nil, nil
			}
			continue
		}

		r, perr := FromFields(strings.Fields(line))
		if perr != nil {
			return nil, fmt.Errorf("line %d: %w", p.lineNumber, perr)
		}
		return &r, nil
	}
}

// LineNumber returns the number of the last line read.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// Close closes the underlying file, if the parser opened one.
func (p *Parser) Close() error {
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}
