// SPDX-License-Identifier: MIT

package rewrite

import (
	"strings"
	"unicode/utf8"
)

// Scan walks text left to right and calls fn once per matched span or
// unmatched rune. At each position the longest matching key wins; the scan
// then resumes right after the matched span. A non-nil error from fn stops
// the scan and is returned as is.
//
// An invalid UTF-8 byte is reported as an unmatched token of that one byte.
func (t *Table) Scan(text string, fn func(Token) error) error {
	for i := 0; i < len(text); {
		if n, repl := t.longest(text[i:]); n > 0 {
			if err := fn(Token{Offset: i, Text: text[i : i+n], Replacement: repl, Matched: true}); err != nil {
				return err
			}
			i += n

			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		if err := fn(Token{Offset: i, Text: text[i : i+size]}); err != nil {
			return err
		}
		i += size
	}

	return nil
}

// Rewrite replaces every longest match in text by its replacement.
// Unmatched runes are dropped in Strict mode and kept in Permissive mode;
// invalid UTF-8 bytes are kept byte for byte.
func (t *Table) Rewrite(text string, mode Mode) string {
	var b strings.Builder
	b.Grow(len(text))
	// fn never fails, so neither does Scan.
	_ = t.Scan(text, func(tok Token) error {
		switch {
		case tok.Matched:
			b.WriteString(tok.Replacement)
		case mode == Permissive:
			b.WriteString(tok.Text)
		}

		return nil
	})

	return b.String()
}
