// SPDX-License-Identifier: MIT
// Package: isopsephy/alphabet
//
// greek_spec.go - canonical Greek numeral alphabet (data-only).
//
// Purpose:
//   - Single source of truth for the Milesian (Ionic) numeral values of the
//     27 Greek letters, their glyph variants and their Latin transliteration.
//   - Building logic (ownership checks, case expansion, tables) lives in
//     registry.go.
//
// Values:
//   - α..θ   → 1..9    (ϛ/ϝ digamma/stigma = 6, numeral-only)
//   - ι..ϙ   → 10..90  (ϙ/ϟ qoppa = 90, numeral-only)
//   - ρ..ϡ   → 100..900 (ϡ/ͳ sampi = 900, numeral-only)
//
// Transliteration:
//   - One Latin letter per letter: a b g d e z h q i k l m n c o p r s t u f x y w.
//     η → h, θ → q, ξ → c, χ → x, ψ → y, ω → w keep the mapping one-to-one.
//   - Numeral-only letters have none; ToLatin writes 6, 90 and 900 for them.
//
// Notes:
//   - Keep changes append-only: never reorder entries, never change a value.
//   - Latin capitals that look Greek (Y for ϒ) must not be used as glyphs;
//     they would collide with transliteration keys and Build rejects them.

package alphabet

// greekDefinition is never handed out directly; GreekDefinition returns a copy.
var greekDefinition = Definition{
	Name:    "greek",
	Entries: []LetterEntry{
		// letters from α to θ (1 to 9)
		{Key: "alpha", Value: 1, Glyphs: []rune{'α'}, Capitals: []rune{'Α'}, Transliteration: "a", Segment: Vowel, Subsegment: Short, Name: "αλφα"},
		{Key: "beta", Value: 2, Glyphs: []rune{'β'}, Capitals: []rune{'Β'}, Transliteration: "b", Segment: Consonant, Subsegment: Mute, Name: "βητα"},
		{Key: "gamma", Value: 3, Glyphs: []rune{'γ'}, Capitals: []rune{'Γ'}, Transliteration: "g", Segment: Consonant, Subsegment: Mute, Name: "γαμμα"},
		{Key: "delta", Value: 4, Glyphs: []rune{'δ'}, Capitals: []rune{'Δ'}, Transliteration: "d", Segment: Consonant, Subsegment: Mute, Name: "δελτα"},
		{Key: "epsilon", Value: 5, Glyphs: []rune{'ε'}, Capitals: []rune{'Ε'}, Transliteration: "e", Segment: Vowel, Subsegment: Short, Name: "ε ψιλον"},
		{Key: "digamma", Value: 6, Glyphs: []rune{'ϛ', 'ϝ'}, Capitals: []rune{'Ϛ', 'Ϝ'}, Segment: Numeral, Name: "διγαμμα", AltNames: []string{"στιγμα", "επισημον", "βαυ"}},
		{Key: "zeta", Value: 7, Glyphs: []rune{'ζ'}, Capitals: []rune{'Ζ'}, Transliteration: "z", Segment: Consonant, Subsegment: Double, Name: "ζητα"},
		{Key: "eta", Value: 8, Glyphs: []rune{'η'}, Capitals: []rune{'Η'}, Transliteration: "h", Segment: Vowel, Subsegment: Long, Name: "ητα"},
		{Key: "theta", Value: 9, Glyphs: []rune{'θ'}, Capitals: []rune{'Θ'}, Transliteration: "q", Segment: Consonant, Subsegment: Mute, Name: "θητα"},

		// letters from ι to ϙ (10 to 90)
		{Key: "iota", Value: 10, Glyphs: []rune{'ι'}, Capitals: []rune{'Ι'}, Transliteration: "i", Segment: Vowel, Subsegment: Short, Name: "ιωτα"},
		{Key: "kappa", Value: 20, Glyphs: []rune{'κ'}, Capitals: []rune{'Κ'}, Transliteration: "k", Segment: Consonant, Subsegment: Mute, Name: "καππα"},
		{Key: "lambda", Value: 30, Glyphs: []rune{'λ'}, Capitals: []rune{'Λ'}, Transliteration: "l", Segment: Consonant, Subsegment: Semivowel, Name: "λαμβδα"},
		{Key: "mu", Value: 40, Glyphs: []rune{'μ'}, Capitals: []rune{'Μ'}, Transliteration: "m", Segment: Consonant, Subsegment: Semivowel, Name: "μυ"},
		{Key: "nu", Value: 50, Glyphs: []rune{'ν'}, Capitals: []rune{'Ν'}, Transliteration: "n", Segment: Consonant, Subsegment: Semivowel, Name: "νυ"},
		{Key: "xi", Value: 60, Glyphs: []rune{'ξ'}, Capitals: []rune{'Ξ'}, Transliteration: "c", Segment: Consonant, Subsegment: Double, Name: "ξει"},
		{Key: "omicron", Value: 70, Glyphs: []rune{'ο'}, Capitals: []rune{'Ο'}, Transliteration: "o", Segment: Vowel, Subsegment: Short, Name: "ο μικρον"},
		{Key: "pi", Value: 80, Glyphs: []rune{'π'}, Capitals: []rune{'Π'}, Transliteration: "p", Segment: Consonant, Subsegment: Mute, Name: "πει"},
		{Key: "qoppa", Value: 90, Glyphs: []rune{'ϙ', 'ϟ'}, Capitals: []rune{'Ϙ', 'Ϟ'}, Segment: Numeral, Name: "κοππα"},

		// letters from ρ to ϡ (100 to 900)
		{Key: "rho", Value: 100, Glyphs: []rune{'ρ'}, Capitals: []rune{'Ρ'}, Transliteration: "r", Segment: Consonant, Subsegment: Semivowel, Name: "ρω"},
		{Key: "sigma", Value: 200, Glyphs: []rune{'σ', 'ϲ', 'ς'}, Capitals: []rune{'Σ', 'Ϲ'}, Transliteration: "s", Segment: Consonant, Subsegment: Semivowel, Name: "σιγμα"},
		{Key: "tau", Value: 300, Glyphs: []rune{'τ'}, Capitals: []rune{'Τ'}, Transliteration: "t", Segment: Consonant, Subsegment: Mute, Name: "ταυ"},
		{Key: "upsilon", Value: 400, Glyphs: []rune{'υ'}, Capitals: []rune{'Υ', 'ϒ'}, Transliteration: "u", Segment: Vowel, Subsegment: Short, Name: "υ ψιλον"},
		{Key: "phi", Value: 500, Glyphs: []rune{'φ'}, Capitals: []rune{'Φ'}, Transliteration: "f", Segment: Consonant, Subsegment: Mute, Name: "φει"},
		{Key: "chi", Value: 600, Glyphs: []rune{'χ'}, Capitals: []rune{'Χ'}, Transliteration: "x", Segment: Consonant, Subsegment: Mute, Name: "χει"},
		{Key: "psi", Value: 700, Glyphs: []rune{'ψ'}, Capitals: []rune{'Ψ'}, Transliteration: "y", Segment: Consonant, Subsegment: Double, Name: "ψει"},
		{Key: "omega", Value: 800, Glyphs: []rune{'ω'}, Capitals: []rune{'Ω'}, Transliteration: "w", Segment: Vowel, Subsegment: Long, Name: "ω μεγα"},
		{Key: "sampi", Value: 900, Glyphs: []rune{'ϡ', 'ͳ'}, Capitals: []rune{'Ϡ', 'Ͳ'}, Segment: Numeral, Name: "σαμπι", AltNames: []string{"δισιγμα"}},
	},

	// Polytonic and monotonic decorated forms collapsed to their base letter.
	Diacritics: map[rune]string{
		'Α': "Ἀ Ἄ Ἂ Ἆ ᾏ ᾈ ᾌ ᾊ ᾎ Ά Ἁ Ἅ Ἃ Ἇ Ὰ ᾼ ᾉ ᾍ ᾋ",
		'α': "ἀ ά ἄ ᾶ ᾳ ὰ ἁ ἂ ἃ ἅ ἆ ἇ ᾀ ᾁ ᾂ ᾃ ᾄ ᾅ ᾆ ᾇ ᾲ ᾴ ᾷ",
		'Ε': "Έ Ἑ Ἕ Ἓ Ὲ Ἐ Ἔ Ἒ",
		'ε': "έ ἔ ἐ ὲ ἑ ἒ ἓ ἕ",
		'Η': "ᾚ ᾞ Ἠ Ἤ Ἢ Ἦ Ή Ἡ Ἥ Ἣ Ἧ Ὴ ῌ ᾙ ᾝ ᾛ ᾟ ᾘ ᾜ",
		'η': "ή ἡ ῆ ἤ ἦ ὴ ῃ ᾐ ᾑ ᾒ ᾓ ᾔ ᾕ ᾖ ᾗ ῂ ῄ ῇ ἠ ἢ ἣ ἥ ἧ",
		'Ι': "Ί Ἱ Ἵ Ἳ Ἷ Ὶ Ἰ Ἴ Ἲ Ἶ Ϊ",
		'ι': "ἱ ἰ ἴ ί ῖ ἷ ἶ ὶ ῒ ΐ ῗ ἲ ἳ ἵ ϊ",
		'Ο': "Ό Ὁ Ὅ Ὃ Ὸ Ὀ Ὄ Ὂ",
		'ο': "ὁ ὄ ὅ ὸ ό ὀ ὂ ὃ",
		'Ρ': "Ῥ",
		'ρ': "ῥ ῤ",
		'Υ': "Ύ Ὑ Ὕ Ὓ Ὗ Ὺ Ῡ Ϋ",
		'υ': "ῦ ύ ϋ ὐ ὕ ὖ ὑ ὺ ὒ ὓ ὔ ὗ ῠ ῡ ῢ ΰ ῧ",
		'Ω': "ᾪ ᾮ Ὠ Ὤ Ὢ Ὦ Ώ Ὡ Ὥ Ὣ Ὧ Ὼ ῼ ᾩ ᾭ ᾫ ᾯ ᾨ ᾬ",
		'ω': "ὥ ῶ ὧ ώ ὠ ῳ ᾧ ὼ ὡ ὢ ὣ ὤ ὦ ᾠ ᾡ ᾢ ᾣ ᾤ ᾥ ᾦ ῲ ῴ ῷ",
	},
}

// GreekDefinition returns a copy of the built-in Greek alphabet.
func GreekDefinition() Definition { return greekDefinition.clone() }
