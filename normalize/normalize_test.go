// SPDX-License-Identifier: MIT

package normalize_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/katalvlaran/isopsephy/alphabet"
	"github.com/katalvlaran/isopsephy/logger"
	"github.com/katalvlaran/isopsephy/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain silences the shared loggers.
func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func greek(t *testing.T, opts ...normalize.Option) *normalize.Normalizer {
	t.Helper()
	n, err := normalize.New(alphabet.Greek(), opts...)
	require.NoError(t, err)

	return n
}

// TestNormalize_Greek runs every pass over Greek input.
func TestNormalize_Greek(t *testing.T) {
	n := greek(t)

	tests := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"plain", "λογος", "λογος"},
		{"polytonic", "Ἰησοῦς", "Ιησους"},
		{"iota subscript", "ᾠδῇ", "ωδη"},
		{"punctuation", "λόγος, ἀγάπη!", "λογος αγαπη"},
		{"decomposed input", "ἄ", "α"},
		{"not in table", "ᾱ", "α"},
		{"digits removed", "ω 12", "ω "},
		{"latin accents", "Lógos", "Logos"},
		{"unmapped latin", "jv", ""},
		{"whitespace folded", "α\tβ γ\nδ", "α β γ δ"},
		{"capitals kept", "ΛΌΓΟΣ", "ΛΟΓΟΣ"},
		{"numeral letters kept", "ϛϙϡ", "ϛϙϡ"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, n.Normalize(tc.in))
		})
	}
}

// TestNormalize_Options turns single passes off.
func TestNormalize_Options(t *testing.T) {
	n := greek(t, normalize.WithMarkStripping(false))
	assert.Equal(t, "", n.Normalize("ᾱ"), "no table entry, no stripping")
	assert.Equal(t, "α", n.Normalize("ά"), "table still applies")

	n = greek(t, normalize.WithWhitespaceFolding(false))
	assert.Equal(t, "α\tβ γ", n.Normalize("α\tβ γ."))
}

// TestNormalize_Hebrew strips points and cantillation marks.
func TestNormalize_Hebrew(t *testing.T) {
	n, err := normalize.New(alphabet.Hebrew())
	require.NoError(t, err)
	assert.Zero(t, n.Table().Len())

	assert.Equal(t, "שלום", n.Normalize("שָׁלוֹם"))
	assert.Equal(t, "בראשית ברא", n.Normalize("בְּרֵאשִׁית בָּרָא׃"))
}

// TestNormalize_OutputClass checks the output alphabet and idempotence.
func TestNormalize_OutputClass(t *testing.T) {
	reg := alphabet.Greek()
	n := greek(t)
	inputs := []string{
		"Ἐν ἀρχῇ ἦν ὁ λόγος, καὶ ὁ λόγος ἦν πρὸς τὸν θεόν.",
		"ΤῊΝ ΔΈ ΨΥΧῊΝ 123 ϰ ϐ",
		"mixed λόγος and Logos ß",
	}
	for _, in := range inputs {
		out := n.Normalize(in)
		for _, r := range out {
			assert.True(t, r == ' ' || reg.Allowed(r), "%q in %q", r, out)
		}
		assert.Equal(t, out, n.Normalize(out), "idempotent on %q", in)
	}
}

// TestNormalize_WarnsOnRemoval logs only when characters are removed.
func TestNormalize_WarnsOnRemoval(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(io.Discard)

	n := greek(t)
	n.Normalize("λογος")
	assert.Empty(t, buf.String())

	n.Normalize("λογος!?")
	assert.Contains(t, buf.String(), "removed 2 unsupported characters")
}

// TestTable looks up decorated forms, composed or not.
func TestTable(t *testing.T) {
	n := greek(t)
	tb := n.Table()
	assert.Greater(t, tb.Len(), 200)

	b, ok := tb.Base("ῷ")
	assert.True(t, ok)
	assert.Equal(t, 'ω', b)
	b, ok = tb.Base("ῷ")
	assert.True(t, ok, "decomposed lookup")
	assert.Equal(t, 'ω', b)
	_, ok = tb.Base("ω")
	assert.False(t, ok)

	assert.Equal(t, "Αλφα!", tb.Apply("Ἄλφα!"))
}

// TestNewTable_Errors rejects conflicting diacritics.
func TestNewTable_Errors(t *testing.T) {
	base := alphabet.Definition{
		Name: "mini",
		Entries: []alphabet.LetterEntry{
			{Key: "alpha", Value: 1, Glyphs: []rune{'α'}, Capitals: []rune{'Α'}, Transliteration: "a", Segment: alphabet.Vowel},
			{Key: "beta", Value: 2, Glyphs: []rune{'β'}, Capitals: []rune{'Β'}, Transliteration: "b", Segment: alphabet.Consonant},
		},
	}

	tests := []struct {
		name       string
		diacritics map[rune]string
		key        string
	}{
		{"base outside alphabet", map[rune]string{'x': "ά"}, "x"},
		{"base is a transliteration key", map[rune]string{'a': "ά"}, "a"},
		{"form is a letter", map[rune]string{'α': "ά β"}, "β"},
		{"form under two bases", map[rune]string{'α': "ά", 'β': "ά"}, "ά"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			def := base
			def.Diacritics = tc.diacritics
			reg, err := alphabet.Build(def)
			require.NoError(t, err)

			_, err = normalize.New(reg)
			require.ErrorIs(t, err, alphabet.ErrDefinition)
			var de *alphabet.DefinitionError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tc.key, de.Key)
			assert.Equal(t, "diacritics", de.Entry)
		})
	}
}

// TestNormalize_CustomAlphabet uses the diacritics of a decoded alphabet.
func TestNormalize_CustomAlphabet(t *testing.T) {
	f, err := os.Open("../alphabet/testdata/digraph.yaml")
	require.NoError(t, err)
	defer f.Close()

	def, err := alphabet.Decode(f)
	require.NoError(t, err)
	reg, err := alphabet.Build(def)
	require.NoError(t, err)
	n, err := normalize.New(reg)
	require.NoError(t, err)

	assert.Equal(t, 5, n.Table().Len())
	assert.Equal(t, "ηθα", n.Normalize("ῆθᾶ"))
}
