package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCommaList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "admin category input",
			input:    "Beach, Sunset Views, Island Hopping",
			expected: []string{"Beach", "Sunset Views", "Island Hopping"},
		},
		{
			name:     "trailing comma",
			input:    "Nature,Culture,",
			expected: []string{"Nature", "Culture"},
		},
		{
			name:     "double comma and padding",
			input:    " Wifi ,, Pool ",
			expected: []string{"Wifi", "Pool"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "only separators",
			input:    ", ,,",
			expected: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SplitCommaList(tc.input))
		})
	}
}

func TestJoinCommaList(t *testing.T) {
	assert.Equal(t, "Beach, Heritage", JoinCommaList([]string{"Beach", "Heritage"}))
	assert.Equal(t, "", JoinCommaList(nil))
}
