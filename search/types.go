// SPDX-License-Identifier: MIT

package search

import "errors"

// ErrNegativeValue indicates a negative term; the sliding window needs
// non-negative values.
var ErrNegativeValue = errors.New("search: negative value")

// Range is an inclusive index range [Start, End].
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices covered.
func (r Range) Len() int { return r.End - r.Start + 1 }

// Indices lists Start..End.
func (r Range) Indices() []int {
	out := make([]int, 0, r.Len())
	for i := r.Start; i <= r.End; i++ {
		out = append(out, i)
	}

	return out
}
