// SPDX-License-Identifier: MIT

// Package translit converts between a script and its Latin transliteration.
//
// Both directions are permissive longest-match rewrites over the tables of
// an alphabet.Registry: runes that no key covers (spaces, punctuation,
// foreign letters) pass through unchanged. Case survives the trip because the
// registry pairs every capital with a title-case Latin key:
//
//	tr := translit.New(alphabet.Greek())
//	tr.ToLatin("Λογος")  // "Logos"
//	tr.ToNative("Logos") // "Λογοσ"
//
// Numeral-only letters (ϛ ϙ ϡ) become their decimal value in ToLatin and are
// never produced by ToNative.
package translit

import (
	"github.com/katalvlaran/isopsephy/alphabet"
	"github.com/katalvlaran/isopsephy/rewrite"
)

// Transliterator is immutable and safe for concurrent use.
type Transliterator struct {
	reg *alphabet.Registry
}

// Pair is one script letter and its Latin form.
type Pair struct {
	Native string
	Latin  string
}

// New returns a Transliterator over reg.
func New(reg *alphabet.Registry) *Transliterator {
	return &Transliterator{reg: reg}
}

// Registry returns the alphabet the transliterator works over.
func (t *Transliterator) Registry() *alphabet.Registry { return t.reg }

// ToLatin rewrites every script glyph of text into Latin.
func (t *Transliterator) ToLatin(text string) string {
	return t.reg.LatinTable().Rewrite(text, rewrite.Permissive)
}

// ToNative rewrites every Latin key of text into the primary script glyph,
// or the primary capital for title- and upper-case keys.
func (t *Transliterator) ToNative(text string) string {
	return t.reg.NativeTable().Rewrite(text, rewrite.Permissive)
}

// Letters lists the script glyphs of text with their Latin forms, in
// reading order. Runes outside the script are skipped.
func (t *Transliterator) Letters(text string) []Pair {
	var out []Pair
	_ = t.reg.LatinTable().Scan(text, func(tok rewrite.Token) error {
		if tok.Matched {
			out = append(out, Pair{Native: tok.Text, Latin: tok.Replacement})
		}

		return nil
	})

	return out
}
