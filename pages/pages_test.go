package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int
	}{
		{name: "empty", input: "", expected: []int{}},
		{name: "whitespace_only", input: "   \t ", expected: []int{}},
		{name: "single_page", input: "1", expected: []int{0}},
		{name: "two_pages", input: "1,3", expected: []int{0, 2}},
		{name: "page_and_range", input: "1,3-5", expected: []int{0, 2, 3, 4}},
		{name: "mixed", input: "2-4,7,9-10", expected: []int{1, 2, 3, 6, 8, 9}},
		{name: "whitespace_tokens", input: " 2 - 4 , 7 ", expected: []int{1, 2, 3, 6}},
		{name: "duplicates_collapse", input: "3,3,2-4", expected: []int{1, 2, 3}},
		{name: "inverted_range_is_empty", input: "5-3", expected: []int{}},
		{name: "invalid_token_skipped", input: "abc,2", expected: []int{1}},
		{name: "invalid_range_bound_skipped", input: "1-x,4", expected: []int{3}},
		{name: "too_many_dashes_skipped", input: "1-2-3,6", expected: []int{5}},
		{name: "zero_ignored", input: "0,2", expected: []int{1}},
		{name: "trailing_comma", input: "1,", expected: []int{0}},
		{name: "range_clamps_below_one", input: "0-2", expected: []int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assert.Equal(t, tt.expected, got.Sorted())
			assert.Equal(t, len(tt.expected), got.Len())
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, []int{1, 2, 3, 6, 8, 9}, Parse("2-4,7,9-10").Sorted())
	}
}

func TestSetContains(t *testing.T) {
	s := Parse("1,3-5")
	assert.True(t, s.Contains(0))
	assert.False(t, s.Contains(1))
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(5))
}

func TestAll(t *testing.T) {
	s := All(3)
	assert.Equal(t, []int{0, 1, 2}, s.Sorted())
	assert.Equal(t, 0, All(0).Len())
}
