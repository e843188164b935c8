// SPDX-License-Identifier: MIT

package rewrite

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// node is one trie level, keyed by rune.
type node struct {
	children map[rune]*node
	value    string
	terminal bool
}

// Table is an immutable longest-match substitution table.
type Table struct {
	root   *node
	size   int
	maxLen int // longest key, in runes
}

// New builds a Table from key → replacement pairs.
//
// Errors:
//   - ErrEmptyKey: some key is "".
//   - ErrMultiRuneKey: a key has more than one rune under WithSingleRuneKeys.
//
// Keys are inserted in sorted order so that error reporting is deterministic.
func New(pairs map[string]string, opts ...Option) (*Table, error) {
	cfg := newConfig(opts...)

	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := &Table{root: &node{}}
	for _, k := range keys {
		if k == "" {
			return nil, ErrEmptyKey
		}
		n := utf8.RuneCountInString(k)
		if cfg.singleRune && n > 1 {
			return nil, fmt.Errorf("rewrite: key %q: %w", k, ErrMultiRuneKey)
		}
		t.insert(k, pairs[k])
		if n > t.maxLen {
			t.maxLen = n
		}
	}

	return t, nil
}

func (t *Table) insert(key, value string) {
	cur := t.root
	for _, r := range key {
		if cur.children == nil {
			cur.children = make(map[rune]*node)
		}
		next, ok := cur.children[r]
		if !ok {
			next = &node{}
			cur.children[r] = next
		}
		cur = next
	}
	if !cur.terminal {
		t.size++
	}
	cur.terminal = true
	cur.value = value
}

// Len returns the number of keys.
func (t *Table) Len() int { return t.size }

// MaxKeyLen returns the length in runes of the longest key.
func (t *Table) MaxKeyLen() int { return t.maxLen }

// Match returns the longest key that is a prefix of text, with its replacement.
func (t *Table) Match(text string) (key, replacement string, ok bool) {
	n, repl := t.longest(text)
	if n == 0 {
		return "", "", false
	}

	return text[:n], repl, true
}

// longest returns the byte length of the longest key prefixing text and its
// replacement, or 0. An invalid UTF-8 byte never matches.
func (t *Table) longest(text string) (int, string) {
	cur := t.root
	best, value := 0, ""
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		next, ok := cur.children[r]
		if !ok {
			break
		}
		cur = next
		i += size
		if cur.terminal {
			best, value = i, cur.value
		}
	}

	return best, value
}

// Lookup reports the replacement registered for exactly key.
func (t *Table) Lookup(key string) (string, bool) {
	cur := t.root
	for _, r := range key {
		next, ok := cur.children[r]
		if !ok {
			return "", false
		}
		cur = next
	}
	if !cur.terminal {
		return "", false
	}

	return cur.value, true
}
