// SPDX-License-Identifier: MIT

package alphabet

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrDefinition indicates an ambiguous or incomplete alphabet definition.
// It is fatal for the definition at hand: fix the data, do not retry.
// Usage: if errors.Is(err, ErrDefinition) { /* report bad alphabet data */ }.
var ErrDefinition = errors.New("alphabet: invalid definition")

// DefinitionError carries the offending entry and key. It unwraps to
// ErrDefinition.
type DefinitionError struct {
	Alphabet string // Definition.Name
	Entry    string // entry Key, or "#<index>" when the entry has no key
	Key      string // offending glyph or transliteration, may be empty
	Reason   string
}

// Error implements error.
func (e *DefinitionError) Error() string {
	msg := "alphabet"
	if e.Alphabet != "" {
		msg += " " + e.Alphabet
	}
	if e.Entry != "" {
		msg += ": entry " + e.Entry
	}
	if e.Key != "" {
		msg += fmt.Sprintf(": key %q", e.Key)
	}

	return msg + ": " + e.Reason
}

// Unwrap returns ErrDefinition.
func (e *DefinitionError) Unwrap() error { return ErrDefinition }

// entryLabel names an entry in diagnostics: its Key, or "#<idx>" without one.
func entryLabel(key string, idx int) string {
	if key != "" {
		return key
	}

	return "#" + strconv.Itoa(idx)
}
