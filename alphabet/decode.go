// SPDX-License-Identifier: MIT

package alphabet

import (
	"fmt"
	"io"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// yamlDefinition mirrors Definition with glyphs spelled as strings.
type yamlDefinition struct {
	Name       string            `yaml:"name"`
	Unicase    bool              `yaml:"unicase"`
	Entries    []yamlEntry       `yaml:"entries"`
	Diacritics map[string]string `yaml:"diacritics"`
}

type yamlEntry struct {
	Key             string   `yaml:"key"`
	Value           int      `yaml:"value"`
	Glyphs          []string `yaml:"glyphs"`
	Capitals        []string `yaml:"capitals"`
	Transliteration string   `yaml:"transliteration"`
	Segment         string   `yaml:"segment"`
	Subsegment      string   `yaml:"subsegment"`
	Name            string   `yaml:"name"`
	AltNames        []string `yaml:"alt_names"`
}

// Decode reads a YAML alphabet description:
//
//	name: greek-subset
//	unicase: false
//	entries:
//	  - key: alpha
//	    value: 1
//	    glyphs: [α]
//	    capitals: [Α]
//	    transliteration: a
//	    segment: vowel
//	    subsegment: short
//	    name: αλφα
//	diacritics:
//	  α: "ἀ ά ᾶ"
//
// Every glyph, capital and diacritics key must be exactly one rune; other
// shapes fail with ErrDefinition. Decode only converts; validation of the
// alphabet itself happens in Build.
func Decode(r io.Reader) (Definition, error) {
	var raw yamlDefinition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return Definition{}, fmt.Errorf("alphabet: decode: %w", err)
	}

	def := Definition{
		Name:    raw.Name,
		Unicase: raw.Unicase,
		Entries: make([]LetterEntry, 0, len(raw.Entries)),
	}
	for i, e := range raw.Entries {
		glyphs, err := singleRunes(raw.Name, e.Key, i, e.Glyphs)
		if err != nil {
			return Definition{}, err
		}
		capitals, err := singleRunes(raw.Name, e.Key, i, e.Capitals)
		if err != nil {
			return Definition{}, err
		}
		def.Entries = append(def.Entries, LetterEntry{
			Key:             e.Key,
			Value:           e.Value,
			Glyphs:          glyphs,
			Capitals:        capitals,
			Transliteration: e.Transliteration,
			Segment:         Segment(e.Segment),
			Subsegment:      Subsegment(e.Subsegment),
			Name:            e.Name,
			AltNames:        e.AltNames,
		})
	}
	if len(raw.Diacritics) > 0 {
		def.Diacritics = make(map[rune]string, len(raw.Diacritics))
		for base, forms := range raw.Diacritics {
			r, size := utf8.DecodeRuneInString(base)
			if size == 0 || size != len(base) {
				return Definition{}, &DefinitionError{Alphabet: raw.Name, Key: base, Reason: "diacritics key is not a single rune"}
			}
			def.Diacritics[r] = forms
		}
	}

	return def, nil
}

func singleRunes(name, key string, idx int, in []string) ([]rune, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]rune, 0, len(in))
	for _, s := range in {
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) || r == utf8.RuneError {
			return nil, &DefinitionError{Alphabet: name, Entry: entryLabel(key, idx), Key: s, Reason: "glyph is not a single rune"}
		}
		out = append(out, r)
	}

	return out, nil
}
