// SPDX-License-Identifier: MIT

package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/isopsephy/alphabet"
	"github.com/katalvlaran/isopsephy/logger"
)

// Normalizer reduces text to one alphabet's character class.
type Normalizer struct {
	reg   *alphabet.Registry
	table *Table
	cfg   config
}

// New returns a Normalizer for reg.
//
// Errors: *alphabet.DefinitionError (ErrDefinition) from NewTable.
func New(reg *alphabet.Registry, opts ...Option) (*Normalizer, error) {
	t, err := NewTable(reg)
	if err != nil {
		return nil, err
	}

	return &Normalizer{reg: reg, table: t, cfg: newConfig(opts...)}, nil
}

// Table returns the diacritic table in use.
func (n *Normalizer) Table() *Table { return n.table }

// Normalize runs every pass over text; see the package documentation.
// The result holds only letters of the alphabet and spaces. Normalize is
// idempotent.
func (n *Normalizer) Normalize(text string) string {
	s := norm.NFC.String(text)
	s = n.table.Apply(s)
	if n.cfg.stripMarks {
		s = n.stripMarks(s)
	}

	// Transformers keep state, so the chain is built per call.
	var fold transform.Transformer = transform.Nop
	if n.cfg.foldWhitespace {
		fold = runes.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return ' '
			}

			return r
		})
	}
	filter := runes.Remove(runes.Predicate(n.drop))
	out, _, err := transform.String(transform.Chain(fold, filter), s)
	if err != nil {
		// Unreachable for in-memory strings; keep the unfiltered text.
		logger.WarningLogger.Printf("normalize %s: %v", n.reg.Name(), err)

		return s
	}

	if dropped := utf8.RuneCountInString(s) - utf8.RuneCountInString(out); dropped > 0 {
		logger.WarningLogger.Printf("normalize %s: removed %d unsupported characters from %q",
			n.reg.Name(), dropped, text)
	}

	return out
}

// drop reports whether the filter removes r.
func (n *Normalizer) drop(r rune) bool {
	if r == ' ' || n.reg.Allowed(r) {
		return false
	}

	return n.cfg.foldWhitespace || !unicode.IsSpace(r)
}

// stripMarks decomposes every rune outside the alphabet and removes its
// nonspacing marks. Letters of the alphabet are never touched.
func (n *Normalizer) stripMarks(s string) string {
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if n.reg.Allowed(r) {
			b.WriteRune(r)

			continue
		}
		bare, _, err := transform.String(strip, string(r))
		if err != nil {
			bare = string(r)
		}
		b.WriteString(bare)
	}

	return b.String()
}
