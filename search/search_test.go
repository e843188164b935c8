// SPDX-License-Identifier: MIT

package search_test

import (
	"testing"

	"github.com/katalvlaran/isopsephy/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordValues are the values of a short Greek phrase, used across tests.
var wordValues = []int{70, 58, 81, 909, 70, 215, 70, 1022, 580, 930, 898}

// TestFindCumulativeRanges_Phrase finds both overlapping pairs worth 285.
func TestFindCumulativeRanges_Phrase(t *testing.T) {
	got, err := search.FindCumulativeRanges(wordValues, 285)
	require.NoError(t, err)
	assert.Equal(t, []search.Range{{Start: 4, End: 5}, {Start: 5, End: 6}}, got)
}

// TestFindCumulativeRanges_Cases covers edge inputs, zero terms included.
func TestFindCumulativeRanges_Cases(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		target int
		want   []search.Range
	}{
		{"empty input", nil, 5, nil},
		{"zero target, positive values", []int{5, 5, 5}, 0, nil},
		{"zero target, zero values", []int{0, 3, 0}, 0, []search.Range{{Start: 0, End: 0}, {Start: 2, End: 2}}},
		{"single element equals target", []int{1, 9, 2}, 9, []search.Range{{Start: 1, End: 1}}},
		{"whole sequence", []int{1, 2, 3}, 6, []search.Range{{Start: 0, End: 2}}},
		{"overlapping runs", []int{285, 70, 215, 70}, 285, []search.Range{{Start: 0, End: 0}, {Start: 1, End: 2}, {Start: 2, End: 3}}},
		{"leading zero extends run", []int{0, 5}, 5, []search.Range{{Start: 0, End: 1}, {Start: 1, End: 1}}},
		{"trailing zero extends run", []int{5, 0}, 5, []search.Range{{Start: 0, End: 0}, {Start: 0, End: 1}}},
		{"zeros on both sides", []int{0, 5, 0}, 5, []search.Range{
			{Start: 0, End: 1}, {Start: 1, End: 1}, {Start: 0, End: 2}, {Start: 1, End: 2},
		}},
		{"zero target, zero run", []int{0, 0}, 0, []search.Range{{Start: 0, End: 0}, {Start: 0, End: 1}, {Start: 1, End: 1}}},
		{"zero between matches", []int{2, 3, 0, 5}, 5, []search.Range{
			{Start: 0, End: 1}, {Start: 0, End: 2}, {Start: 2, End: 3}, {Start: 3, End: 3},
		}},
		{"no match", []int{1, 2, 4}, 100, nil},
		{"negative target never matches", []int{1, 2}, -1, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := search.FindCumulativeRanges(tc.values, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestFindCumulativeRanges_Negative rejects negative terms with their index.
func TestFindCumulativeRanges_Negative(t *testing.T) {
	got, err := search.FindCumulativeRanges([]int{3, -1, 4}, 3)
	assert.ErrorIs(t, err, search.ErrNegativeValue)
	assert.Contains(t, err.Error(), "values[1] = -1")
	assert.Nil(t, got)
}

// TestFindCumulativeRanges_MatchesBruteForce cross-checks the window against
// an O(n²) enumeration, with and without zero terms, and checks the order.
func TestFindCumulativeRanges_MatchesBruteForce(t *testing.T) {
	inputs := [][]int{
		{3, 1, 2, 5, 1, 1, 1, 3, 2, 4, 6, 1},
		{0, 3, 0, 0, 2, 1, 0, 5, 0},
		{0, 0, 0},
		{4, 0, 1, 0, 0, 5, 0, 2, 3, 0},
	}
	for _, values := range inputs {
		for target := 0; target <= 15; target++ {
			got, err := search.FindCumulativeRanges(values, target)
			require.NoError(t, err)
			assert.ElementsMatch(t, bruteForce(values, target), got, "%v target %d", values, target)
			for i := 1; i < len(got); i++ {
				prev, cur := got[i-1], got[i]
				assert.True(t, prev.End < cur.End || (prev.End == cur.End && prev.Start < cur.Start),
					"%v target %d: %v before %v", values, target, prev, cur)
			}
		}
	}
}

func bruteForce(values []int, target int) []search.Range {
	var out []search.Range
	for i := range values {
		sum := 0
		for j := i; j < len(values); j++ {
			sum += values[j]
			if sum == target {
				out = append(out, search.Range{Start: i, End: j})
			}
		}
	}

	return out
}

// TestFindEqual lists the indices of single matching values.
func TestFindEqual(t *testing.T) {
	assert.Equal(t, []int{0, 4, 6}, search.FindEqual(wordValues, 70))
	assert.Nil(t, search.FindEqual(wordValues, 1))
	assert.Nil(t, search.FindEqual(nil, 1))
}

// TestRange_Helpers checks the inclusive length and index list.
func TestRange_Helpers(t *testing.T) {
	r := search.Range{Start: 2, End: 4}
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []int{2, 3, 4}, r.Indices())
}
