// SPDX-License-Identifier: MIT

package value

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrUnsupportedCharacter indicates input outside the alphabet, or a
	// literal digit. Callers may normalize the text and retry.
	ErrUnsupportedCharacter = errors.New("value: unsupported character")

	// ErrDomain indicates an argument outside a helper's domain, e.g. modulo < 1.
	ErrDomain = errors.New("value: argument out of domain")
)

// UnsupportedCharacterError names the offending input. It unwraps to
// ErrUnsupportedCharacter.
type UnsupportedCharacterError struct {
	Text   string // the full input
	Char   rune   // first offending rune
	Offset int    // byte offset of Char in Text
	Digit  bool   // Char is a decimal digit
}

// Error implements error.
func (e *UnsupportedCharacterError) Error() string {
	kind := "character"
	if e.Digit {
		kind = "digit"
	}

	return fmt.Sprintf("value: string %q contains unsupported %s %q at offset %d", e.Text, kind, e.Char, e.Offset)
}

// Unwrap returns ErrUnsupportedCharacter.
func (e *UnsupportedCharacterError) Unwrap() error { return ErrUnsupportedCharacter }
