// SPDX-License-Identifier: MIT

package normalize

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/isopsephy/alphabet"
	"github.com/katalvlaran/isopsephy/rewrite"
)

// Table maps decorated letter forms to their base letter.
type Table struct {
	base  map[string]rune
	table *rewrite.Table
}

// NewTable builds the diacritic table of reg's definition. Decorated forms
// are stored in NFC.
//
// Errors (*alphabet.DefinitionError, ErrDefinition) when:
//   - a base is not a glyph or capital of the alphabet;
//   - a decorated form is itself a letter of the alphabet;
//   - one decorated form is listed under two bases.
func NewTable(reg *alphabet.Registry) (*Table, error) {
	def := reg.Definition()

	bases := make([]rune, 0, len(def.Diacritics))
	for b := range def.Diacritics {
		bases = append(bases, b)
	}
	sort.Slice(bases, func(i, j int) bool { return bases[i] < bases[j] })

	t := &Table{base: make(map[string]rune)}
	pairs := make(map[string]string)
	for _, b := range bases {
		if _, ok := reg.Latin(b); !ok {
			return nil, diacriticError(def.Name, string(b), "base is not a glyph of the alphabet")
		}
		for _, form := range strings.Fields(def.Diacritics[b]) {
			form = norm.NFC.String(form)
			if _, ok := reg.ValueOf(form); ok {
				return nil, diacriticError(def.Name, form, "decorated form is a letter of the alphabet")
			}
			if prev, ok := t.base[form]; ok && prev != b {
				return nil, diacriticError(def.Name, form, fmt.Sprintf("listed under %q and %q", prev, b))
			}
			t.base[form] = b
			pairs[form] = string(b)
		}
	}

	var err error
	if t.table, err = rewrite.New(pairs); err != nil {
		return nil, diacriticError(def.Name, "", err.Error())
	}

	return t, nil
}

func diacriticError(name, key, reason string) error {
	return &alphabet.DefinitionError{Alphabet: name, Entry: "diacritics", Key: key, Reason: reason}
}

// Len returns the number of decorated forms.
func (t *Table) Len() int { return len(t.base) }

// Base returns the base letter of a decorated form.
func (t *Table) Base(form string) (rune, bool) {
	b, ok := t.base[norm.NFC.String(form)]

	return b, ok
}

// Apply replaces every decorated form of text by its base letter; all other
// runes pass through.
func (t *Table) Apply(text string) string {
	return t.table.Rewrite(text, rewrite.Permissive)
}
