// SPDX-License-Identifier: MIT

package rewrite

// Option customizes table construction.
type Option func(*config)

type config struct {
	// singleRune rejects keys longer than one rune.
	singleRune bool
}

// WithSingleRuneKeys restricts the table to one-rune keys; New then rejects
// longer keys with ErrMultiRuneKey.
func WithSingleRuneKeys() Option {
	return func(c *config) { c.singleRune = true }
}

func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
