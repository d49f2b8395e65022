package fasta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSequenceByte(t *testing.T) {
	tests := []struct {
		b    byte
		want bool
	}{
		{'A', true},
		{'a', true},
		{'Z', true},
		{'z', true},
		{'N', true},
		{'*', true},
		{'-', true},
		{'\n', false},
		{'\r', false},
		{' ', false},
		{'\t', false},
		{'>', false},
		{';', false},
		{'0', false},
		{'.', false},
		{'@', false},
		{'[', false},
		{0xC3, false},
	}

	for _, tt := range tests {
		t.Run(string(rune(tt.b)), func(t *testing.T) {
			assert.Equal(t, tt.want, IsSequenceByte(tt.b))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, byte('A'), Normalize('a', true))
	assert.Equal(t, byte('a'), Normalize('a', false))
	assert.Equal(t, byte('T'), Normalize('T', true))
	assert.Equal(t, byte('*'), Normalize('*', true))
	assert.Equal(t, byte('-'), Normalize('-', true))
}

func TestCountSequenceBytes(t *testing.T) {
	assert.Equal(t, 4, countSequenceBytes([]byte("ACGT\n")))
	assert.Equal(t, 4, countSequenceBytes([]byte("acgt\r\n")))
	assert.Equal(t, 6, countSequenceBytes([]byte("AC-GT*")))
	assert.Equal(t, 0, countSequenceBytes([]byte(" \t\r\n")))
	assert.Equal(t, 0, countSequenceBytes(nil))
}
