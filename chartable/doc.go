// SPDX-License-Identifier: MIT

// Package chartable lays a phrase out letter by letter: glyph,
// transliteration and value per letter, value and digital root per word, and
// a phrase summary.
//
// ⚙️ Usage:
//
//	reg := alphabet.Greek()
//	t, err := chartable.Build(value.New(reg), translit.New(reg), "θεος λογος")
//	if err != nil {
//	  // value.ErrUnsupportedCharacter: normalize the text first
//	}
//	_ = t.Render(os.Stdout) // <table class="char-table">…</table>
//
// The rows are plain data (Letters, Words, Phrase); Node and Render build
// the HTML form with golang.org/x/net/html.
package chartable
