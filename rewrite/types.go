// SPDX-License-Identifier: MIT

package rewrite

import "errors"

// Sentinel errors returned by New.
var (
	// ErrEmptyKey indicates a table key of length zero, which would match everywhere.
	ErrEmptyKey = errors.New("rewrite: empty key")

	// ErrMultiRuneKey indicates a key longer than one rune while WithSingleRuneKeys is set.
	ErrMultiRuneKey = errors.New("rewrite: multi-rune key not allowed")
)

// Mode selects what happens to runes that no key matches.
//
//   - Strict: unmatched runes are dropped from the output.
//   - Permissive: unmatched runes are copied to the output unchanged.
type Mode int

const (
	// Strict drops unmatched runes.
	Strict Mode = iota

	// Permissive passes unmatched runes through.
	Permissive
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Permissive:
		return "permissive"
	default:
		return "unknown"
	}
}

// Token is one step of a scan.
//
// For a matched span, Text is the matched key and Replacement its mapped value.
// For an unmatched rune, Text holds that single rune (or the one invalid
// UTF-8 byte) and Replacement is empty.
// Offset is the byte offset of Text in the scanned input.
type Token struct {
	Offset      int
	Text        string
	Replacement string
	Matched     bool
}
