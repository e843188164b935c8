// SPDX-License-Identifier: MIT

package normalize

// Option configures a Normalizer.
type Option func(*config)

type config struct {
	stripMarks     bool
	foldWhitespace bool
}

// WithMarkStripping toggles the generic combining-mark pass (default on).
// With it off, decorated forms missing from the diacritic table are dropped
// by the filter instead of reduced to their base letter.
func WithMarkStripping(on bool) Option {
	return func(c *config) { c.stripMarks = on }
}

// WithWhitespaceFolding toggles mapping every Unicode space to ' ' (default
// on). With it off, whitespace runes are kept as they are.
func WithWhitespaceFolding(on bool) Option {
	return func(c *config) { c.foldWhitespace = on }
}

func newConfig(opts ...Option) config {
	cfg := config{stripMarks: true, foldWhitespace: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
