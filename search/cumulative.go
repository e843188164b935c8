// SPDX-License-Identifier: MIT

package search

import "fmt"

// FindCumulativeRanges returns every non-empty contiguous range of values
// whose sum is exactly target, ordered by end index and then start index.
//
// Zero terms are handled the same on both sides: a run bordered by zeros is
// reported with and without each of them ({5, 0} with target 5 gives [0, 0]
// and [0, 1]; {0, 5} gives [0, 1] and [1, 1]). The result is exactly the set
// an O(n²) enumeration of all ranges would produce.
//
// Algorithm Outline (two pointers):
//  1. Keep a window [lo, v] and its sum y; lo is the smallest start whose
//     sum up to v does not exceed target.
//  2. For v = 0..n-1: add values[v] to y, then drop values[lo] while y > target.
//  3. If y == target, record [lo, v] and every later start u ≤ v reached by
//     dropping only zeros.
//
// The u ≤ v bound keeps ranges non-empty, so target 0 yields only runs of
// zero-valued elements.
//
// Errors:
//   - ErrNegativeValue: some values[i] < 0 (wrapped with the index).
//
// Complexity: O(n + len(result)); each index enters and leaves the window once.
func FindCumulativeRanges(values []int, target int) ([]Range, error) {
	for i, x := range values {
		if x < 0 {
			return nil, fmt.Errorf("search: values[%d] = %d: %w", i, x, ErrNegativeValue)
		}
	}

	var (
		out []Range
		lo  int
		y   int
	)
	for v, x := range values {
		y += x
		for lo <= v && y > target {
			y -= values[lo]
			lo++
		}
		if y != target {
			continue
		}
		// Starts past lo keep the sum only while the dropped terms are zero.
		for u, s := lo, y; u <= v && s == target; u++ {
			out = append(out, Range{Start: u, End: v})
			s -= values[u]
		}
	}

	return out, nil
}

// FindEqual returns the indices whose value equals target.
func FindEqual(values []int, target int) []int {
	var out []int
	for i, x := range values {
		if x == target {
			out = append(out, i)
		}
	}

	return out
}
