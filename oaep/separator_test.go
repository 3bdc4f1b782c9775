package oaep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeparator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ps     []byte
		offset int
		found  int
	}{
		{"immediate", []byte{0x01, 'h', 'i'}, 0, 1},
		{"after zeros", []byte{0x00, 0x00, 0x01, 0x00}, 2, 1},
		{"message starts with 0x01", []byte{0x00, 0x01, 0x01}, 1, 1},
		{"wrong marker", []byte{0x00, 0x02, 0x01}, 1, 0},
		{"all zeros", []byte{0x00, 0x00, 0x00}, 0, 0},
		{"empty", nil, 0, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			offset, found := separator(test.ps)
			assert.Equal(t, test.found, found)

			if test.found == 1 {
				assert.Equal(t, test.offset, offset)
			}
		})
	}
}
