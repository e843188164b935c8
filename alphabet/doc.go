// SPDX-License-Identifier: MIT

// Package alphabet turns declarative letter data into an immutable Registry
// of value, transliteration and case lookups.
//
// 🚀 What is an alphabet here?
//
//	A Definition lists one LetterEntry per numeral position of a script:
//	its value, glyphs (primary small form first, then archaic or alternate
//	forms), capitals, Latin transliteration and linguistic class.
//	Numeral-only entries (Greek ϛ ϙ ϡ) carry no transliteration; their
//	decimal value stands in for one.
//
// ✨ What Build produces:
//   - value lookup for every glyph, capital and transliteration key
//   - script → Latin table (numeral-only entries → decimal digits)
//   - Latin → script table (numeral-only entries excluded)
//   - the allowed character class used by the normalizer
//
// Build rejects ambiguous definitions with ErrDefinition: a glyph or
// transliteration key claimed by two entries is reported, never overwritten.
//
// ⚙️ Usage:
//
//	reg := alphabet.Greek()                // built once, shared
//	v, _ := reg.ValueOf("ω")               // 800
//	custom, err := alphabet.Build(myDef)   // errors.Is(err, alphabet.ErrDefinition)
//
// A Registry is never mutated after Build and is safe for concurrent use.
// Greek() and Hebrew() build their registries lazily under sync.Once.
package alphabet
