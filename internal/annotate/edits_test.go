package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		edits    []Edit
		expected string
	}{
		{
			name:     "no edits",
			content:  "unchanged",
			expected: "unchanged",
		},
		{
			name:     "single replacement",
			content:  "hello world",
			edits:    []Edit{{Start: 6, End: 11, Replacement: "gopher"}},
			expected: "hello gopher",
		},
		{
			name:    "ascending input order still applied safely",
			content: "a-b-c",
			edits: []Edit{
				{Start: 0, End: 1, Replacement: "AAA"},
				{Start: 2, End: 3, Replacement: "BBBB"},
				{Start: 4, End: 5, Replacement: ""},
			},
			expected: "AAA-BBBB-",
		},
		{
			name:     "insertion",
			content:  "ab",
			edits:    []Edit{{Start: 1, End: 1, Replacement: "X"}},
			expected: "aXb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Apply(tt.content, tt.edits))
		})
	}
}

func TestApply_DoesNotReorderCallerEdits(t *testing.T) {
	edits := []Edit{{Start: 0, End: 1, Replacement: "x"}, {Start: 2, End: 3, Replacement: "y"}}
	Apply("abc", edits)
	assert.Equal(t, 0, edits[0].Start)
	assert.Equal(t, 2, edits[1].Start)
}
