// SPDX-License-Identifier: MIT

package chartable

import (
	"strings"

	"github.com/katalvlaran/isopsephy/translit"
	"github.com/katalvlaran/isopsephy/value"
)

// LetterRow is one letter of the phrase.
type LetterRow struct {
	Word            int // index of the word in Table.Words
	Index           int // position of the letter inside its word
	Letter          string
	Transliteration string
	Value           int
}

// WordRow summarizes one word. Words keep their order in the phrase; a word
// that occurs twice gets two rows.
type WordRow struct {
	Word             string
	Characters       int
	Value            int
	DigitSum         int
	DigitalRoot      int
	DigitProduct     int
	DigitProductRoot int
}

// Summary totals the phrase.
type Summary struct {
	Text        string
	Characters  int
	Value       int
	DigitSum    int
	DigitalRoot int
}

// Table is the char table of one phrase.
type Table struct {
	Letters []LetterRow
	Words   []WordRow
	Phrase  Summary
	Modulo  int
}

// Build splits text on whitespace and values every letter through calc;
// tr supplies the Latin row.
//
// Errors: value.ErrUnsupportedCharacter for text the calculator rejects.
func Build(calc *value.Calculator, tr *translit.Transliterator, text string, opts ...Option) (*Table, error) {
	cfg := newConfig(opts...)
	t := &Table{Phrase: Summary{Text: text}, Modulo: cfg.modulo}

	for w, word := range strings.Fields(text) {
		letters, err := calc.Letters(word)
		if err != nil {
			return nil, err
		}
		row := WordRow{Word: word, Characters: len(letters)}
		for i, l := range letters {
			t.Letters = append(t.Letters, LetterRow{
				Word:            w,
				Index:           i,
				Letter:          l.Glyph,
				Transliteration: tr.ToLatin(l.Glyph),
				Value:           l.Value,
			})
			row.Value += l.Value
		}
		if err = t.fill(&row); err != nil {
			return nil, err
		}
		t.Words = append(t.Words, row)
		t.Phrase.Characters += row.Characters
		t.Phrase.Value += row.Value
	}

	t.Phrase.DigitSum = value.DigitSum(t.Phrase.Value)
	root, err := value.DigitalRoot(t.Phrase.Value, cfg.modulo)
	if err != nil {
		return nil, err
	}
	t.Phrase.DigitalRoot = root

	return t, nil
}

// fill derives the digit columns of row from its value.
func (t *Table) fill(row *WordRow) error {
	var err error
	row.DigitSum = value.DigitSum(row.Value)
	row.DigitProduct = value.DigitProduct(row.Value)
	if row.DigitalRoot, err = value.DigitalRoot(row.Value, t.Modulo); err != nil {
		return err
	}
	row.DigitProductRoot, err = value.DigitalRoot(row.DigitProduct, t.Modulo)

	return err
}

// lettersOf returns the letter rows of word w.
func (t *Table) lettersOf(w int) []LetterRow {
	var out []LetterRow
	for _, l := range t.Letters {
		if l.Word == w {
			out = append(out, l)
		}
	}

	return out
}
