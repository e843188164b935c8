// SPDX-License-Identifier: MIT

package alphabet

import "sync"

// Built-in registries are built on first use, at most once per process.
var (
	greekOnce sync.Once
	greekReg  *Registry

	hebrewOnce sync.Once
	hebrewReg  *Registry
)

// Greek returns the shared registry of the built-in Greek alphabet.
func Greek() *Registry {
	greekOnce.Do(func() { greekReg = MustBuild(greekDefinition) })

	return greekReg
}

// Hebrew returns the shared registry of the built-in Hebrew alphabet.
func Hebrew() *Registry {
	hebrewOnce.Do(func() { hebrewReg = MustBuild(hebrewDefinition) })

	return hebrewReg
}
