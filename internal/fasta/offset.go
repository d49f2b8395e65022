package fasta

// ByteOffset maps a 1-based coordinate to the absolute byte position of that
// residue, for a body wrapped at lineWidth residues per line with a single
// terminator byte after each line. lineWidth must be positive.
func ByteOffset(headerLen int64, lineWidth int, start int64) int64 {
	w := int64(lineWidth)
	i := start - 1
	return headerLen + (i/w)*(w+1) + i%w
}
