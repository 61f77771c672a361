package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "", NormalizeWhitespace(""))
	assert.Equal(t, "age limit 18-27", NormalizeWhitespace("  age \t limit\n\n 18-27  "))
	assert.Equal(t, "a b", NormalizeWhitespace("a  \tb"))
}

func TestExtractAgeRange(t *testing.T) {
	tests := []struct {
		text string
		min  int
		max  int
	}{
		{"18-27 years", 18, 27},
		{"Age Limit: 21 - 30 as on 01/01/2026", 21, 30},
		{"Max 30 years", 18, 30},
		{"Maximum age is 35 years", 18, 35},
		{"", 18, 60},
		{"no ages here", 18, 60},
		// the range pattern wins over a later Max clause
		{"between 20-25, Max 40 with relaxation", 20, 25},
	}
	for _, tc := range tests {
		min, max := ExtractAgeRange(tc.text)
		assert.Equal(t, tc.min, min, tc.text)
		assert.Equal(t, tc.max, max, tc.text)
	}
}
