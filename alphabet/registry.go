// SPDX-License-Identifier: MIT

package alphabet

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/isopsephy/logger"
	"github.com/katalvlaran/isopsephy/rewrite"
)

// Registry is the immutable lookup structure derived from one Definition.
type Registry struct {
	def Definition

	valueOf  map[string]int    // glyphs, capitals, transliteration keys
	toLatin  map[string]string // one-rune glyph → Latin or decimal value
	toNative map[string]string // Latin key → primary glyph or capital
	capital  map[rune]rune     // small glyph → paired capital
	small    map[rune]rune     // capital → paired small glyph
	allowed  map[rune]struct{}

	values *rewrite.Table
	latin  *rewrite.Table
	native *rewrite.Table
}

// builder accumulates the registry maps while checking ownership.
type builder struct {
	def   *Definition
	reg   *Registry
	owner map[string]int // value key → entry index
	latin map[string]int // folded transliteration → entry index
	value map[int]int    // numeral value → entry index
}

// Build derives a Registry from def. Entries are processed in declared order
// and every key is claimed at most once; a second claim by another entry is
// an error, never an overwrite.
//
// Errors: a *DefinitionError wrapping ErrDefinition.
//
// Complexity: O(Σ glyphs + Σ len(transliteration)).
func Build(def Definition) (*Registry, error) {
	def = def.clone()
	if len(def.Entries) == 0 {
		return nil, &DefinitionError{Alphabet: def.Name, Reason: "no entries"}
	}

	reg := &Registry{
		def:      def,
		valueOf:  make(map[string]int),
		toLatin:  make(map[string]string),
		toNative: make(map[string]string),
		capital:  make(map[rune]rune),
		small:    make(map[rune]rune),
		allowed:  make(map[rune]struct{}),
	}
	b := &builder{
		def:   &reg.def,
		reg:   reg,
		owner: make(map[string]int),
		latin: make(map[string]int),
		value: make(map[int]int),
	}
	for i := range reg.def.Entries {
		if err := b.add(i); err != nil {
			return nil, err
		}
	}
	if err := reg.compile(); err != nil {
		return nil, err
	}
	logger.ProgressLogger.Printf("built %s registry: %d entries, %d value keys",
		def.Name, len(def.Entries), len(reg.valueOf))

	return reg, nil
}

// MustBuild is like Build but panics on error. Use it for static tables only.
func MustBuild(def Definition) *Registry {
	reg, err := Build(def)
	if err != nil {
		panic(err)
	}

	return reg
}

func (b *builder) fail(idx int, key, reason string, args ...interface{}) error {
	return &DefinitionError{Alphabet: b.def.Name, Entry: b.entryName(idx), Key: key, Reason: fmt.Sprintf(reason, args...)}
}

func (b *builder) entryName(idx int) string {
	return entryLabel(b.def.Entries[idx].Key, idx)
}

// add validates entry idx and inserts all its keys.
func (b *builder) add(idx int) error {
	e := &b.def.Entries[idx]
	if err := b.validate(idx); err != nil {
		return err
	}
	if !b.def.Unicase && len(e.Capitals) == 0 {
		e.Capitals = upperGlyphs(e.Glyphs)
	}

	for _, g := range e.Glyphs {
		if err := b.claim(idx, string(g)); err != nil {
			return err
		}
	}
	for i, c := range e.Capitals {
		if err := b.claim(idx, string(c)); err != nil {
			return err
		}
		paired := e.Glyphs[0]
		if i < len(e.Glyphs) {
			paired = e.Glyphs[i]
		}
		if _, ok := b.reg.capital[paired]; !ok {
			b.reg.capital[paired] = c
		}
		if _, ok := b.reg.small[c]; !ok {
			b.reg.small[c] = paired
		}
	}
	// Small glyphs without a capital at their index fall back to the primary capital.
	if len(e.Capitals) > 0 {
		for _, g := range e.Glyphs {
			if _, ok := b.reg.capital[g]; !ok {
				b.reg.capital[g] = e.Capitals[0]
			}
		}
	}

	if e.IsNumeral() {
		digits := strconv.Itoa(e.Value)
		for _, g := range e.Glyphs {
			b.reg.toLatin[string(g)] = digits
		}
		for _, c := range e.Capitals {
			b.reg.toLatin[string(c)] = digits
		}

		return nil
	}

	return b.addLatin(idx)
}

func (b *builder) validate(idx int) error {
	e := b.def.Entries[idx]
	switch {
	case len(e.Glyphs) == 0:
		return b.fail(idx, "", "empty glyphs")
	case e.Value <= 0:
		return b.fail(idx, "", "value %d is not positive", e.Value)
	case !e.Segment.valid():
		return b.fail(idx, "", "unknown segment %q", string(e.Segment))
	case !e.Subsegment.valid():
		return b.fail(idx, "", "unknown subsegment %q", string(e.Subsegment))
	case e.IsNumeral() && e.Transliteration != "":
		return b.fail(idx, e.Transliteration, "numeral-only entry has a transliteration")
	case !e.IsNumeral() && e.Transliteration == "":
		return b.fail(idx, "", "missing transliteration")
	case b.def.Unicase && len(e.Capitals) > 0:
		return b.fail(idx, string(e.Capitals[0]), "capitals in a unicase alphabet")
	}
	for _, r := range e.Transliteration {
		if unicode.IsDigit(r) || unicode.IsSpace(r) {
			return b.fail(idx, e.Transliteration, "transliteration contains %q", r)
		}
	}
	if prev, ok := b.value[e.Value]; ok {
		return b.fail(idx, "", "value %d already used by entry %s", e.Value, b.entryName(prev))
	}
	b.value[e.Value] = idx

	return nil
}

// claim registers key as a value key of entry idx.
func (b *builder) claim(idx int, key string) error {
	if prev, ok := b.owner[key]; ok {
		if prev == idx {
			return nil
		}

		return b.fail(idx, key, "already claimed by entry %s", b.entryName(prev))
	}
	b.owner[key] = idx
	b.reg.valueOf[key] = b.def.Entries[idx].Value
	for _, r := range key {
		b.reg.allowed[r] = struct{}{}
	}

	return nil
}

// addLatin registers the transliteration keys of a non-numeral entry.
func (b *builder) addLatin(idx int) error {
	e := b.def.Entries[idx]
	lower := e.Transliteration
	folded := lower
	if !b.def.Unicase {
		lower = strings.ToLower(lower)
		folded = lower
	}
	if prev, ok := b.latin[folded]; ok {
		return b.fail(idx, e.Transliteration, "transliteration already used by entry %s", b.entryName(prev))
	}
	b.latin[folded] = idx

	primary := string(e.Glyphs[0])
	if err := b.claim(idx, lower); err != nil {
		return err
	}
	b.reg.toNative[lower] = primary
	for _, g := range e.Glyphs {
		b.reg.toLatin[string(g)] = lower
	}
	if b.def.Unicase {
		return nil
	}

	capital := primary
	if len(e.Capitals) > 0 {
		capital = string(e.Capitals[0])
	}
	title := titleCase(lower)
	for _, k := range []string{title, strings.ToUpper(lower)} {
		if k == lower {
			continue
		}
		if err := b.claim(idx, k); err != nil {
			return err
		}
		b.reg.toNative[k] = capital
	}
	for _, c := range e.Capitals {
		b.reg.toLatin[string(c)] = title
	}

	return nil
}

// compile freezes the maps into rewrite tables.
func (r *Registry) compile() error {
	values := make(map[string]string, len(r.valueOf))
	for k, v := range r.valueOf {
		values[k] = strconv.Itoa(v)
	}
	var err error
	if r.values, err = rewrite.New(values); err != nil {
		return &DefinitionError{Alphabet: r.def.Name, Reason: err.Error()}
	}
	if r.latin, err = rewrite.New(r.toLatin, rewrite.WithSingleRuneKeys()); err != nil {
		return &DefinitionError{Alphabet: r.def.Name, Reason: err.Error()}
	}
	if r.native, err = rewrite.New(r.toNative); err != nil {
		return &DefinitionError{Alphabet: r.def.Name, Reason: err.Error()}
	}

	return nil
}

func upperGlyphs(glyphs []rune) []rune {
	var out []rune
	for _, g := range glyphs {
		if u := unicode.ToUpper(g); u != g {
			out = append(out, u)
		}
	}

	return out
}

func titleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// Name returns the definition name.
func (r *Registry) Name() string { return r.def.Name }

// Unicase reports whether the script has no letter case.
func (r *Registry) Unicase() bool { return r.def.Unicase }

// Definition returns a deep copy of the definition the registry was built from,
// with derived capitals filled in.
func (r *Registry) Definition() Definition { return r.def.clone() }

// Entries returns a copy of the entries in declared order.
func (r *Registry) Entries() []LetterEntry { return r.def.clone().Entries }

// ValueOf returns the numeral value of a glyph, capital or transliteration key.
func (r *Registry) ValueOf(key string) (int, bool) {
	v, ok := r.valueOf[key]

	return v, ok
}

// Latin returns the Latin form of a script glyph; numeral-only letters
// yield their decimal value.
func (r *Registry) Latin(glyph rune) (string, bool) {
	s, ok := r.toLatin[string(glyph)]

	return s, ok
}

// Native returns the script glyph for a Latin transliteration key.
func (r *Registry) Native(latin string) (string, bool) {
	s, ok := r.toNative[latin]

	return s, ok
}

// CapitalOf returns the capital paired with a small glyph.
func (r *Registry) CapitalOf(glyph rune) (rune, bool) {
	c, ok := r.capital[glyph]

	return c, ok
}

// SmallOf returns the small glyph paired with a capital.
func (r *Registry) SmallOf(capital rune) (rune, bool) {
	s, ok := r.small[capital]

	return s, ok
}

// Allowed reports whether r belongs to the alphabet's character class:
// a glyph, a capital or a rune of a transliteration key.
func (r *Registry) Allowed(c rune) bool {
	_, ok := r.allowed[c]

	return ok
}

// ValueTable maps every value key to its decimal value.
func (r *Registry) ValueTable() *rewrite.Table { return r.values }

// LatinTable maps script glyphs to Latin.
func (r *Registry) LatinTable() *rewrite.Table { return r.latin }

// NativeTable maps Latin keys to script glyphs.
func (r *Registry) NativeTable() *rewrite.Table { return r.native }
