// SPDX-License-Identifier: MIT

package alphabet

// Segment is the linguistic class of a letter.
type Segment string

// Segments.
const (
	Vowel     Segment = "vowel"
	Consonant Segment = "consonant"
	Numeral   Segment = "numeral" // numeral-only letter, no transliteration
)

// Subsegment refines Segment. The empty value means "unspecified".
type Subsegment string

// Subsegments.
const (
	Short     Subsegment = "short"
	Long      Subsegment = "long"
	Mute      Subsegment = "mute"
	Semivowel Subsegment = "semivowel"
	Double    Subsegment = "double"
	NoSub     Subsegment = ""
)

func (s Segment) valid() bool {
	switch s {
	case Vowel, Consonant, Numeral:
		return true
	}

	return false
}

func (s Subsegment) valid() bool {
	switch s {
	case Short, Long, Mute, Semivowel, Double, NoSub:
		return true
	}

	return false
}

// LetterEntry is one alphabet position.
//
// Capitals pair positionally with Glyphs; a capital past the end of Glyphs
// pairs with the primary glyph. Transliteration is required for every entry
// except numeral-only ones, which must leave it empty.
type LetterEntry struct {
	// Key is a stable ASCII identifier, e.g. "alpha". Used in diagnostics.
	Key string

	Value           int
	Glyphs          []rune
	Capitals        []rune
	Transliteration string

	Segment    Segment
	Subsegment Subsegment

	// Name is the letter's name in its own script; AltNames lists other
	// historical names (digamma is also στιγμα, επισημον, βαυ).
	Name     string
	AltNames []string
}

// IsNumeral reports whether the entry is numeral-only.
func (e LetterEntry) IsNumeral() bool { return e.Segment == Numeral }

// Primary returns the primary glyph.
func (e LetterEntry) Primary() rune {
	if len(e.Glyphs) == 0 {
		return 0
	}

	return e.Glyphs[0]
}

func (e LetterEntry) clone() LetterEntry {
	c := e
	c.Glyphs = append([]rune(nil), e.Glyphs...)
	c.Capitals = append([]rune(nil), e.Capitals...)
	c.AltNames = append([]string(nil), e.AltNames...)

	return c
}

// Definition describes one script.
type Definition struct {
	// Name identifies the script, e.g. "greek".
	Name string

	// Unicase marks scripts without letter case (Hebrew). Transliteration
	// keys are then matched exactly as declared and never case-expanded.
	Unicase bool

	// Entries in declared order; Build iterates them in this order.
	Entries []LetterEntry

	// Diacritics maps a base letter to its decorated forms, separated by
	// spaces. Consulted only by the normalizer.
	Diacritics map[rune]string
}

func (d Definition) clone() Definition {
	c := d
	c.Entries = make([]LetterEntry, len(d.Entries))
	for i, e := range d.Entries {
		c.Entries[i] = e.clone()
	}
	if d.Diacritics != nil {
		c.Diacritics = make(map[rune]string, len(d.Diacritics))
		for k, v := range d.Diacritics {
			c.Diacritics[k] = v
		}
	}

	return c
}
