// SPDX-License-Identifier: MIT

package value

import (
	"strings"
	"unicode"

	"github.com/katalvlaran/isopsephy/alphabet"
	"github.com/katalvlaran/isopsephy/rewrite"
	"github.com/katalvlaran/isopsephy/search"
)

// Calculator sums numeral values over one alphabet. It holds no mutable
// state and is safe for concurrent use.
type Calculator struct {
	reg *alphabet.Registry
}

// Letter is one matched letter of a word.
type Letter struct {
	Glyph string // matched key: a glyph, a capital or a transliteration key
	Value int
}

// Word is one whitespace-separated word with its value.
type Word struct {
	Text   string
	Offset int // byte offset in the scanned text
	Value  int
}

// NameValue is the value of a letter's written name.
type NameValue struct {
	Key   string // LetterEntry.Key
	Name  string
	Value int
}

// Run is a range of consecutive words whose values add up to a target.
type Run struct {
	search.Range
	Words  []Word
	Phrase string // the words joined by single spaces
}

// New returns a Calculator over reg.
func New(reg *alphabet.Registry) *Calculator {
	return &Calculator{reg: reg}
}

// Registry returns the alphabet the calculator works over.
func (c *Calculator) Registry() *alphabet.Registry { return c.reg }

// Value returns the sum of the values of all letters in text. Whitespace
// separates words and contributes nothing; the empty text is worth 0.
//
// Errors: *UnsupportedCharacterError (ErrUnsupportedCharacter) for the first
// decimal digit anywhere in text, or else for the first rune no letter key
// matches.
//
// Complexity: O(len(text) · MaxKeyLen).
func (c *Calculator) Value(text string) (int, error) {
	total := 0
	err := c.walk(text, func(tok rewrite.Token, v int) {
		total += v
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

// Letters returns the per-letter breakdown of word, in reading order.
// Whitespace is skipped.
func (c *Calculator) Letters(word string) ([]Letter, error) {
	var out []Letter
	err := c.walk(word, func(tok rewrite.Token, v int) {
		if tok.Matched {
			out = append(out, Letter{Glyph: tok.Text, Value: v})
		}
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Words splits text on whitespace, as strings.Fields does, and values every
// word.
func (c *Calculator) Words(text string) ([]Word, error) {
	var (
		out []Word
		cur *Word
	)
	err := c.walk(text, func(tok rewrite.Token, v int) {
		if !tok.Matched {
			cur = nil

			return
		}
		if cur == nil {
			out = append(out, Word{Offset: tok.Offset})
			cur = &out[len(out)-1]
		}
		cur.Value += v
		cur.Text = text[cur.Offset : tok.Offset+len(tok.Text)]
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// NameValues values the name and every alternate name of each entry, in
// declared order. Names written with combining marks (Hebrew points) fail
// with ErrUnsupportedCharacter; normalize them and call Value instead.
func (c *Calculator) NameValues() ([]NameValue, error) {
	var out []NameValue
	for _, e := range c.reg.Entries() {
		names := make([]string, 0, 1+len(e.AltNames))
		if e.Name != "" {
			names = append(names, e.Name)
		}
		names = append(names, e.AltNames...)
		for _, name := range names {
			v, err := c.Value(name)
			if err != nil {
				return nil, err
			}
			out = append(out, NameValue{Key: e.Key, Name: name, Value: v})
		}
	}

	return out, nil
}

// Find returns the words of text whose value equals target.
func (c *Calculator) Find(text string, target int) ([]Word, error) {
	words, err := c.Words(text)
	if err != nil {
		return nil, err
	}
	var out []Word
	for _, i := range search.FindEqual(wordValues(words), target) {
		out = append(out, words[i])
	}

	return out, nil
}

// FindCumulative returns every run of consecutive words of text whose values
// add up to target, ordered by last word and then first word.
func (c *Calculator) FindCumulative(text string, target int) ([]Run, error) {
	words, err := c.Words(text)
	if err != nil {
		return nil, err
	}
	ranges, err := search.FindCumulativeRanges(wordValues(words), target)
	if err != nil {
		return nil, err
	}

	out := make([]Run, 0, len(ranges))
	for _, r := range ranges {
		run := Run{Range: r, Words: words[r.Start : r.End+1 : r.End+1]}
		parts := make([]string, len(run.Words))
		for i, w := range run.Words {
			parts[i] = w.Text
		}
		run.Phrase = strings.Join(parts, " ")
		out = append(out, run)
	}

	return out, nil
}

// walk scans text through the value table and calls fn for every matched
// letter and every whitespace rune (with v = 0).
func (c *Calculator) walk(text string, fn func(tok rewrite.Token, v int)) error {
	for i, r := range text {
		if unicode.IsDigit(r) {
			return &UnsupportedCharacterError{Text: text, Char: r, Offset: i, Digit: true}
		}
	}

	return c.reg.ValueTable().Scan(text, func(tok rewrite.Token) error {
		if tok.Matched {
			v, _ := c.reg.ValueOf(tok.Text)
			fn(tok, v)

			return nil
		}
		r := []rune(tok.Text)[0]
		if !unicode.IsSpace(r) {
			return &UnsupportedCharacterError{Text: text, Char: r, Offset: tok.Offset}
		}
		fn(tok, 0)

		return nil
	})
}

func wordValues(words []Word) []int {
	out := make([]int, len(words))
	for i, w := range words {
		out[i] = w.Value
	}

	return out
}
