// SPDX-License-Identifier: MIT

// Package normalize reduces free text to the character class of one
// alphabet, so that the value calculator accepts it.
//
// 🚀 Passes, in order:
//
//  1. NFC composition, so decomposed input meets the table precomposed.
//  2. Diacritic table: longest-match replacement of every decorated form
//     the alphabet lists (Ἀ → Α, ῷ → ω).
//  3. Mark stripping: any remaining rune outside the alphabet is decomposed
//     (NFD) and loses its nonspacing marks; Hebrew points and Latin accents
//     go this way.
//  4. Whitespace folding: every Unicode space becomes ' '.
//  5. Filter: every rune that is neither a letter of the alphabet nor a
//     space is removed.
//
// ⚙️ Usage:
//
//	n, err := normalize.New(alphabet.Greek())
//	if err != nil {
//	  // errors.Is(err, alphabet.ErrDefinition): conflicting diacritics
//	}
//	n.Normalize("Ἰησοῦς, ὁ λόγος.") // "Ιησους ο λογος"
//
// Normalization is never applied implicitly by the other packages.
// A Normalizer is immutable and safe for concurrent use.
package normalize
