package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected StringList
	}{
		{name: "json array", input: `["Beach","Nature"]`, expected: StringList{"Beach", "Nature"}},
		{name: "comma string", input: `"Beach, Sunset Views, Island Hopping"`, expected: StringList{"Beach", "Sunset Views", "Island Hopping"}},
		{name: "comma string with empties", input: `"Beach,,  ,Nature"`, expected: StringList{"Beach", "Nature"}},
		{name: "empty string", input: `""`, expected: StringList{}},
		{name: "empty array", input: `[]`, expected: StringList{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got StringList
			err := json.Unmarshal([]byte(tc.input), &got)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestStringList_RejectsOtherShapes(t *testing.T) {
	var got StringList
	err := json.Unmarshal([]byte(`42`), &got)
	assert.Error(t, err)
}
