// SPDX-License-Identifier: MIT
// Package: isopsephy/alphabet
//
// hebrew_spec.go - Hebrew numeral alphabet (gematria, data-only).
//
// Values follow the "great" reckoning: the five final forms continue the
// hundreds after ת (400) with ך 500, ם 600, ן 700, ף 800, ץ 900, so every
// entry keeps a distinct value.
//
// The script has no letter case (Unicase). Transliteration keys are
// therefore case-sensitive: lowercase k m n p y name the regular letters and
// K M N P Y their final forms.
//
// Vowel points (niqqud) and cantillation marks are not listed as
// diacritics; the normalizer strips combining marks generically.

package alphabet

var hebrewDefinition = Definition{
	Name:    "hebrew",
	Unicase: true,
	Entries: []LetterEntry{
		// letters from א to ט (1 to 9)
		{Key: "alef", Value: 1, Glyphs: []rune{'א'}, Transliteration: "a", Segment: Vowel, Name: "אָלֶף"},
		{Key: "beth", Value: 2, Glyphs: []rune{'ב'}, Transliteration: "b", Segment: Consonant, Name: "בֵּית"},
		{Key: "gimel", Value: 3, Glyphs: []rune{'ג'}, Transliteration: "c", Segment: Consonant, Name: "גִּימל"},
		{Key: "daleth", Value: 4, Glyphs: []rune{'ד'}, Transliteration: "d", Segment: Consonant, Name: "דָּלֶת"},
		{Key: "he", Value: 5, Glyphs: []rune{'ה'}, Transliteration: "e", Segment: Vowel, Name: "הי"},
		{Key: "vau", Value: 6, Glyphs: []rune{'ו'}, Transliteration: "f", Segment: Vowel, Name: "ויו"},
		{Key: "zayin", Value: 7, Glyphs: []rune{'ז'}, Transliteration: "z", Segment: Consonant, Name: "זַיִן"},
		{Key: "heth", Value: 8, Glyphs: []rune{'ח'}, Transliteration: "h", Segment: Consonant, Name: "חֵית"},
		{Key: "teth", Value: 9, Glyphs: []rune{'ט'}, Transliteration: "u", Segment: Consonant, Name: "טֵית"},

		// letters from י to צ (10 to 90)
		{Key: "yod", Value: 10, Glyphs: []rune{'י'}, Transliteration: "i", Segment: Vowel, Name: "יוֹד"},
		{Key: "kaph", Value: 20, Glyphs: []rune{'כ'}, Transliteration: "k", Segment: Consonant, Name: "כַּף"},
		{Key: "lamed", Value: 30, Glyphs: []rune{'ל'}, Transliteration: "l", Segment: Consonant, Name: "לָמֶד"},
		{Key: "mem", Value: 40, Glyphs: []rune{'מ'}, Transliteration: "m", Segment: Consonant, Name: "מֵם"},
		{Key: "nun", Value: 50, Glyphs: []rune{'נ'}, Transliteration: "n", Segment: Consonant, Name: "נוּן"},
		{Key: "samekh", Value: 60, Glyphs: []rune{'ס'}, Transliteration: "x", Segment: Consonant, Name: "סָמֶך"},
		{Key: "ayin", Value: 70, Glyphs: []rune{'ע'}, Transliteration: "o", Segment: Consonant, Name: "עַיִן"},
		{Key: "pe", Value: 80, Glyphs: []rune{'פ'}, Transliteration: "p", Segment: Consonant, Name: "פה"},
		{Key: "tsade", Value: 90, Glyphs: []rune{'צ'}, Transliteration: "y", Segment: Consonant, Name: "צדיק"},

		// letters from ק to ת (100 to 400)
		{Key: "qoph", Value: 100, Glyphs: []rune{'ק'}, Transliteration: "q", Segment: Consonant, Name: "קוֹף"},
		{Key: "resh", Value: 200, Glyphs: []rune{'ר'}, Transliteration: "r", Segment: Consonant, Name: "רֵישׂ"},
		{Key: "shin", Value: 300, Glyphs: []rune{'ש'}, Transliteration: "s", Segment: Consonant, Name: "שִׁין"},
		{Key: "tau", Value: 400, Glyphs: []rune{'ת'}, Transliteration: "t", Segment: Consonant, Name: "תו"},

		// final forms (500 to 900)
		{Key: "final_kaph", Value: 500, Glyphs: []rune{'ך'}, Transliteration: "K", Segment: Consonant, Name: "כַף סוֹפִית"},
		{Key: "final_mem", Value: 600, Glyphs: []rune{'ם'}, Transliteration: "M", Segment: Consonant, Name: "מֵם סוֹפִית"},
		{Key: "final_nun", Value: 700, Glyphs: []rune{'ן'}, Transliteration: "N", Segment: Consonant, Name: "נוּן סוֹפִית"},
		{Key: "final_pe", Value: 800, Glyphs: []rune{'ף'}, Transliteration: "P", Segment: Consonant, Name: "פה סופית"},
		{Key: "final_tsade", Value: 900, Glyphs: []rune{'ץ'}, Transliteration: "Y", Segment: Consonant, Name: "צדיק סופית"},
	},
}

// HebrewDefinition returns a copy of the built-in Hebrew alphabet.
func HebrewDefinition() Definition { return hebrewDefinition.clone() }
