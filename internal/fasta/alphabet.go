package fasta

// alphabet marks every byte accepted as sequence content: ASCII letters,
// '*' (translation stop) and '-' (gap).
var alphabet = func() (t [256]bool) {
	for c := 'A'; c <= 'Z'; c++ {
		t[c] = true
		t[c+'a'-'A'] = true
	}
	t['*'] = true
	t['-'] = true
	return t
}()

// IsSequenceByte reports whether b is part of the sequence alphabet.
// Line terminators, carriage returns and any other byte are not.
func IsSequenceByte(b byte) bool {
	return alphabet[b]
}

// Normalize returns b, uppercased when caps is set.
func Normalize(b byte, caps bool) byte {
	if caps && b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// countSequenceBytes returns the number of alphabet bytes in line.
func countSequenceBytes(line []byte) int {
	n := 0
	for _, b := range line {
		if alphabet[b] {
			n++
		}
	}
	return n
}
