// SPDX-License-Identifier: MIT

// Package search finds runs of consecutive values that add up to a target.
//
// 🚀 What is it for?
//
//	Given the numeral value of every word of a text, FindCumulativeRanges
//	returns every run of adjacent words whose values sum exactly to the
//	target. FindEqual is the single-word case.
//
//	  values = [70, 58, 81, 909, 70, 215, 70, 1022, 580, 930, 898]
//	  target = 285
//	  → [{4 5} {5 6}]   (70+215, 215+70)
//
// ✨ Key features:
//   - single pass two-pointer window, O(n + results) time, O(1) extra memory
//   - overlapping runs are all reported
//   - zeros at either edge of a run are reported both ways: with the zero
//     and without it
//   - empty runs are never reported, also for target 0
//
// Preconditions:
//
//	All values must be non-negative: the window only shrinks from the left,
//	which lowers the sum only when no term is negative. Negative input fails
//	with ErrNegativeValue instead of silently missing runs.
package search
