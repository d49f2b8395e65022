package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-fasta/internal/region"
)

func TestFASTAWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	w := NewFASTAWriter(&buf, "chr1", 4)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write(region.Region{Start: 3, End: 12}, "GTACGTACGT"))
	require.NoError(t, w.Write(region.Region{Name: "exon1", Start: 1, End: 4}, "ACGT"))
	require.NoError(t, w.Flush())

	want := ">chr1:3-12\nGTAC\nGTAC\nGT\n>exon1:1-4\nACGT\n"
	assert.Equal(t, want, buf.String())
}

func TestFASTAWriter_SingleLine(t *testing.T) {
	var buf bytes.Buffer
	w := NewFASTAWriter(&buf, "", 0)

	require.NoError(t, w.Write(region.Region{Start: 1, End: 6}, "ACGTAC"))
	require.NoError(t, w.Flush())

	assert.Equal(t, ">1-6\nACGTAC\n", buf.String())
}

func TestTabWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewTabWriter(&buf, "chr1")

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write(region.Region{Start: 5, End: 6}, "AC"))
	require.NoError(t, w.Write(region.Region{Name: "e2", Start: 3, End: 6}, "GTAC"))
	require.NoError(t, w.Flush())

	want := "#Name\tStart\tEnd\tLength\tSequence\n" +
		"chr1\t5\t6\t2\tAC\n" +
		"e2\t3\t6\t4\tGTAC\n"
	assert.Equal(t, want, buf.String())
}

func TestRawWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewRawWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write(region.Region{Start: 1, End: 4}, "ACGT"))
	require.NoError(t, w.Write(region.Region{Start: 5, End: 6}, "AC"))
	require.NoError(t, w.Flush())

	assert.Equal(t, "ACGT\nAC\n", buf.String())
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer

	for format, want := range map[string]any{
		"fasta": &FASTAWriter{},
		"FA":    &FASTAWriter{},
		"tab":   &TabWriter{},
		"tsv":   &TabWriter{},
		"raw":   &RawWriter{},
	} {
		w, err := NewWriter(format, &buf, "s", DefaultWidth)
		require.NoError(t, err, format)
		assert.IsType(t, want, w, format)
	}

	_, err := NewWriter("bam", &buf, "s", DefaultWidth)
	assert.Error(t, err)
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "chr1", SourceName("chr1 Homo sapiens chromosome 1"))
	assert.Equal(t, "ENST00000311936.8|KRAS", SourceName("ENST00000311936.8|KRAS"))
	assert.Equal(t, "", SourceName(""))
	assert.Equal(t, "", SourceName("   "))
}
