package fasta

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, content string) (headerInfo, error) {
	t.Helper()
	return scanHeader(bufio.NewReader(strings.NewReader(content)))
}

func TestScanHeader(t *testing.T) {
	tests := []struct {
		name    string
		content string
		length  int64
		width   int
		title   string
	}{
		{"single header", ">seq1\nACGT\nAC\n", 6, 4, "seq1"},
		{"header and comments", ">chr1 test\n;made up\n;second\nACGTACGT\n", 28, 8, "chr1 test"},
		{"comment before header", ";note\n>x\nAC\n", 9, 2, "x"},
		{"no header", "ACGTA\nAC\n", 0, 5, ""},
		{"data line without terminator", ">s\nACG", 3, 3, "s"},
		{"bare markers", ">\n;\nA\n", 4, 1, ""},
		{"lowercase and gaps", ">s\nac-gt*\n", 3, 6, "s"},
		{"carriage returns not counted", ">s\r\nACGT\r\n", 4, 4, "s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := scan(t, tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.length, info.length)
			assert.Equal(t, tt.width, info.lineWidth)
			assert.Equal(t, tt.title, info.title)
		})
	}
}

func TestScanHeader_InvalidFormat(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"header only", ">seq1\n"},
		{"header without terminator", ">seq1"},
		{"comments only", ";a\n;b\n"},
		{"empty first data line", ">seq1\n\nACGT\n"},
		{"whitespace first data line", ">seq1\n  \t\nACGT\n"},
		{"gzip magic", "\x1f\x8bAAAA\nACGT\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scan(t, tt.content)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestScanHeader_StopsAfterFirstDataLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(">s\nACGT\nGGGG\n"))
	_, err := scanHeader(r)
	require.NoError(t, err)

	rest, err := r.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "GGGG\n", rest)
}
