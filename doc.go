// Package isopsephy computes the numeral value of Greek (and Hebrew) words:
// isopsephy, or gematria for Hebrew.
//
// 🚀 What is isopsephy?
//
//	Before Arabic numerals, Greek wrote numbers with letters: α = 1 … θ = 9,
//	ι = 10 … ϙ = 90, ρ = 100 … ϡ = 900. Reading a word as a number and
//	summing its letters gives its isopsephic value; words of equal value
//	were held to be related.
//
// ✨ Subpackages:
//
//	alphabet/  — letter tables (Greek, Hebrew, YAML) built into a Registry
//	rewrite/   — longest-match substitution tables
//	value/     — value of letters, words, phrases; digital root, sum, product
//	translit/  — script ⇄ Latin transliteration
//	normalize/ — accent and punctuation removal
//	search/    — runs of consecutive values adding up to a target
//	chartable/ — letter-by-letter HTML tables of a phrase
//	logger/    — shared progress and warning loggers
//
// Quick example:
//
//	reg := alphabet.Greek()
//	n, _ := normalize.New(reg)
//	v, _ := value.New(reg).Value(n.Normalize("Ἰησοῦς")) // 888
//	root, _ := value.DigitalRoot(v, value.DefaultModulo) // 6
//
// Latin input works as well: "Ihsous" and "IHSOUS" are also 888.
//
//	go get github.com/katalvlaran/isopsephy
package isopsephy
