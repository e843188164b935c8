// SPDX-License-Identifier: MIT

package chartable

import (
	"fmt"

	"github.com/katalvlaran/isopsephy/value"
)

// Option configures Build.
type Option func(*config)

type config struct {
	modulo int
}

// WithModulo sets the modulo of every digital root in the table
// (default value.DefaultModulo). Panics if m < 1.
func WithModulo(m int) Option {
	if m < 1 {
		panic(fmt.Sprintf("chartable: WithModulo(%d): modulo must be >= 1", m))
	}

	return func(c *config) { c.modulo = m }
}

func newConfig(opts ...Option) config {
	cfg := config{modulo: value.DefaultModulo}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
