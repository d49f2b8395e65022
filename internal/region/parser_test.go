package region

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, p *Parser) []Region {
	t.Helper()
	var regions []Region
	for {
		r, err := p.Next()
		require.NoError(t, err)
		if r == nil {
			return regions
		}
		regions = append(regions, *r)
	}
}

func TestParser_Next(t *testing.T) {
	input := `# name	start	end
exon1	1	4

exon2	5	6
3	6
last	7	9`

	p := NewParserFromReader(strings.NewReader(input))
	regions := collect(t, p)

	require.Len(t, regions, 4)
	assert.Equal(t, Region{Name: "exon1", Start: 1, End: 4}, regions[0])
	assert.Equal(t, Region{Name: "exon2", Start: 5, End: 6}, regions[1])
	assert.Equal(t, Region{Start: 3, End: 6}, regions[2])
	assert.Equal(t, Region{Name: "last", Start: 7, End: 9}, regions[3])
	assert.Equal(t, 6, p.LineNumber())
}

func TestParser_TrailingComment(t *testing.T) {
	p := NewParserFromReader(strings.NewReader("1 2\n# done"))
	assert.Len(t, collect(t, p), 1)
}

func TestParser_Malformed(t *testing.T) {
	p := NewParserFromReader(strings.NewReader("1 2\nbad\n"))

	r, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, r)

	_, err = p.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "line 2")
}

func TestNewParser_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.tsv")
	require.NoError(t, os.WriteFile(path, []byte("a\t1\t2\nb\t3\t4\n"), 0644))

	p, err := NewParser(path)
	require.NoError(t, err)
	defer p.Close()

	assert.Len(t, collect(t, p), 2)
}

func TestNewParser_Missing(t *testing.T) {
	_, err := NewParser(filepath.Join(t.TempDir(), "missing.tsv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
