// SPDX-License-Identifier: MIT

// Package rewrite implements greedy longest-match substitution over a fixed
// key → replacement table.
//
// 🚀 What does it do?
//
//	At every position of the input the table finds the longest key that
//	matches there, emits its replacement and jumps past the matched span.
//	Scanning runs strictly left to right and never backtracks, so a shorter
//	key can never win over a longer one starting at the same position:
//
//	  keys: "p" → π, "ps" → ψ
//	  "psi"  →  "ψi"    (not "πsi")
//
// ✨ Key features:
//   - rune trie lookup, O(k) per position where k = MaxKeyLen()
//   - Strict mode drops unmatched runes, Permissive mode keeps them
//   - Scan exposes every matched span and unmatched rune to a callback
//   - case-sensitive: callers register every case variant they need
//
// ⚙️ Usage:
//
//	t, err := rewrite.New(map[string]string{"a": "α", "ps": "ψ"})
//	if err != nil {
//	  // ErrEmptyKey or ErrMultiRuneKey
//	}
//	out := t.Rewrite("psa!", rewrite.Permissive) // "ψα!"
//
// Performance:
//
//   - Build: O(Σ len(key))
//   - Rewrite/Scan: O(n·k) for n input runes
//
// A Table is immutable after New and safe for concurrent use.
package rewrite
