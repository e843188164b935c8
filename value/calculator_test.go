// SPDX-License-Identifier: MIT

package value_test

import (
	"errors"
	"io"
	"os"
	"testing"
	"unicode/utf8"

	"github.com/katalvlaran/isopsephy/alphabet"
	"github.com/katalvlaran/isopsephy/logger"
	"github.com/katalvlaran/isopsephy/normalize"
	"github.com/katalvlaran/isopsephy/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain silences the shared loggers.
func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// TestValue_Greek values native, capital and Latin spellings.
func TestValue_Greek(t *testing.T) {
	calc := value.New(alphabet.Greek())

	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"blank", " \t\n", 0},
		{"single letter", "ω", 800},
		{"word", "λογος", 373},
		{"capitals", "ΛΟΓΟΣ", 373},
		{"latin", "logos", 373},
		{"latin title case", "Logos", 373},
		{"latin upper case", "LOGOS", 373},
		{"mixed scripts", "aβ", 3},
		{"lunate and final sigma", "ϲς", 400},
		{"numeral letters", "ϛϙϡ", 996},
		{"numeral capitals", "ϚϞͲ", 996},
		{"name", "Ιησους", 888},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.Value(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestValue_EveryGlyph checks every glyph and capital against its entry.
func TestValue_EveryGlyph(t *testing.T) {
	reg := alphabet.Greek()
	calc := value.New(reg)
	for _, e := range reg.Entries() {
		for _, g := range append(append([]rune{}, e.Glyphs...), e.Capitals...) {
			v, err := calc.Value(string(g))
			require.NoError(t, err, "%q", g)
			assert.Equal(t, e.Value, v, "%q", g)
		}
	}
}

// TestValue_Additive checks Value(a + " " + b) == Value(a) + Value(b).
func TestValue_Additive(t *testing.T) {
	calc := value.New(alphabet.Greek())
	words := []string{"λογος", "θεος", "αγαπη", "ΙΧΘΥΣ", "sofia"}
	for _, a := range words {
		for _, b := range words {
			va, err := calc.Value(a)
			require.NoError(t, err)
			vb, err := calc.Value(b)
			require.NoError(t, err)
			vab, err := calc.Value(a + " " + b)
			require.NoError(t, err)
			assert.Equal(t, va+vb, vab, "%s %s", a, b)
		}
	}
}

// TestValue_Unsupported reports the first digit, or else the first unknown rune.
func TestValue_Unsupported(t *testing.T) {
	calc := value.New(alphabet.Greek())

	tests := []struct {
		name   string
		text   string
		char   rune
		offset int
		digit  bool
	}{
		{"latin digit", "a1", '1', 1, true},
		{"digit wins over earlier junk", "!α7", '7', 3, true},
		{"arabic-indic digit", "α٣", '٣', 2, true},
		{"punctuation", "αβ!", '!', 4, false},
		{"accented letter", "ά", 'ά', 0, false},
		{"unmapped latin", "jv", 'j', 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.Value(tc.text)
			assert.Zero(t, got)
			require.ErrorIs(t, err, value.ErrUnsupportedCharacter)

			var ue *value.UnsupportedCharacterError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, tc.text, ue.Text)
			assert.Equal(t, tc.char, ue.Char)
			assert.Equal(t, tc.offset, ue.Offset)
			assert.Equal(t, tc.digit, ue.Digit)
		})
	}
}

// TestUnsupportedCharacterError_Message pins the error text.
func TestUnsupportedCharacterError_Message(t *testing.T) {
	err := &value.UnsupportedCharacterError{Text: "a1", Char: '1', Offset: 1, Digit: true}
	assert.Equal(t, `value: string "a1" contains unsupported digit '1' at offset 1`, err.Error())
}

// TestValue_Hebrew distinguishes regular and final letters by case.
func TestValue_Hebrew(t *testing.T) {
	calc := value.New(alphabet.Hebrew())

	v, err := calc.Value("אלף")
	require.NoError(t, err)
	assert.Equal(t, 831, v)

	v, err = calc.Value("alP")
	require.NoError(t, err)
	assert.Equal(t, 831, v)

	v, err = calc.Value("alp")
	require.NoError(t, err)
	assert.Equal(t, 111, v, "lowercase p is the regular pe")
}

// TestLetters breaks a word into letters in reading order.
func TestLetters(t *testing.T) {
	calc := value.New(alphabet.Greek())

	got, err := calc.Letters("Θεος")
	require.NoError(t, err)
	assert.Equal(t, []value.Letter{
		{Glyph: "Θ", Value: 9},
		{Glyph: "ε", Value: 5},
		{Glyph: "ο", Value: 70},
		{Glyph: "ς", Value: 200},
	}, got)

	_, err = calc.Letters("θ3")
	assert.ErrorIs(t, err, value.ErrUnsupportedCharacter)
}

// TestWords splits on runs of whitespace and keeps byte offsets.
func TestWords(t *testing.T) {
	calc := value.New(alphabet.Greek())

	got, err := calc.Words("  λογος  αβ ")
	require.NoError(t, err)
	assert.Equal(t, []value.Word{
		{Text: "λογος", Offset: 2, Value: 373},
		{Text: "αβ", Offset: 14, Value: 3},
	}, got)

	got, err = calc.Words("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestFind returns every word with the target value.
func TestFind(t *testing.T) {
	calc := value.New(alphabet.Greek())

	got, err := calc.Find("λογος αβ λογος", 373)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Offset)
	assert.Equal(t, 16, got[1].Offset)
}

// TestFindCumulative joins consecutive words into phrases.
func TestFindCumulative(t *testing.T) {
	calc := value.New(alphabet.Greek())

	got, err := calc.FindCumulative("α β γ", 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Start)
	assert.Equal(t, 1, got[0].End)
	assert.Equal(t, "α β", got[0].Phrase)
	assert.Equal(t, "γ", got[1].Phrase)
	assert.Len(t, got[1].Words, 1)

	_, err = calc.FindCumulative("α 9", 3)
	assert.ErrorIs(t, err, value.ErrUnsupportedCharacter)
}

// TestNameValues_Greek values every letter name and alternate name.
func TestNameValues_Greek(t *testing.T) {
	calc := value.New(alphabet.Greek())

	got, err := calc.NameValues()
	require.NoError(t, err)

	byName := make(map[string]int, len(got))
	for _, nv := range got {
		byName[nv.Name] = nv.Value
	}
	assert.Equal(t, 532, byName["αλφα"])
	assert.Equal(t, 311, byName["βητα"])
	assert.Equal(t, 849, byName["ω μεγα"])
	assert.Equal(t, 554, byName["στιγμα"])
	assert.Len(t, got, 27+4)
}

// TestNameValues_HebrewNeedsNormalization values pointed names after normalizing.
func TestNameValues_HebrewNeedsNormalization(t *testing.T) {
	reg := alphabet.Hebrew()
	calc := value.New(reg)

	_, err := calc.NameValues()
	assert.ErrorIs(t, err, value.ErrUnsupportedCharacter, "names carry points")

	n, err := normalize.New(reg)
	require.NoError(t, err)
	want := map[string]int{"alef": 831, "nun": 50 + 6 + 700, "tau": 406}
	for _, e := range reg.Entries() {
		v, err := calc.Value(n.Normalize(e.Name))
		require.NoError(t, err, e.Key)
		if w, ok := want[e.Key]; ok {
			assert.Equal(t, w, v, e.Key)
		}
	}
}

// TestValue_InvalidUTF8 reports an invalid byte as U+FFFD at its offset.
func TestValue_InvalidUTF8(t *testing.T) {
	_, err := value.New(alphabet.Greek()).Value("α\xff")

	var ue *value.UnsupportedCharacterError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, utf8.RuneError, ue.Char)
	assert.Equal(t, 2, ue.Offset)
}
