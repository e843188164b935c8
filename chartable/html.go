// SPDX-License-Identifier: MIT

package chartable

import (
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ClassName is the class attribute of the generated table.
const ClassName = "char-table"

const nbsp = "\u00a0"

// Node builds the table element:
//
//	caption  the phrase
//	thead    one row of letters
//	tbody    transliterations, then values
//	tfoot    value<sub>root</sub> per word, then value<sub>sum / root</sub>
//
// Words are separated by two spacer columns.
func (t *Table) Node() *html.Node {
	table := element(atom.Table, html.Attribute{Key: "class", Val: ClassName})
	caption := element(atom.Caption)
	caption.AppendChild(text(t.Phrase.Text))
	table.AppendChild(caption)

	var (
		letters = element(atom.Tr)
		latin   = element(atom.Tr)
		values  = element(atom.Tr)
		words   = element(atom.Tr)
	)
	columns := 0
	for w, row := range t.Words {
		if w > 0 {
			letters.AppendChild(cell(atom.Th, text(nbsp)))
			letters.AppendChild(cell(atom.Th, text(nbsp)))
			latin.AppendChild(cell(atom.Td))
			latin.AppendChild(cell(atom.Td, html.Attribute{Key: "class", Val: "empty-cell"}))
			values.AppendChild(cell(atom.Td))
			values.AppendChild(cell(atom.Td, html.Attribute{Key: "class", Val: "empty-cell"}))
			words.AppendChild(cell(atom.Td))
			words.AppendChild(cell(atom.Td))
			columns += 2
		}
		for _, l := range t.lettersOf(w) {
			letters.AppendChild(cell(atom.Th, text(l.Letter)))
			latin.AppendChild(cell(atom.Td, text(l.Transliteration)))
			values.AppendChild(cell(atom.Td, text(strconv.Itoa(l.Value))))
			columns++
		}
		words.AppendChild(cell(atom.Td,
			html.Attribute{Key: "colspan", Val: strconv.Itoa(max(row.Characters, 1))},
			text(strconv.Itoa(row.Value)+" "),
			sub(strconv.Itoa(row.DigitalRoot)),
		))
	}

	thead := element(atom.Thead)
	thead.AppendChild(letters)
	tbody := element(atom.Tbody)
	tbody.AppendChild(latin)
	tbody.AppendChild(values)
	tfoot := element(atom.Tfoot)
	tfoot.AppendChild(words)

	summary := element(atom.Tr)
	summary.AppendChild(cell(atom.Td,
		html.Attribute{Key: "colspan", Val: strconv.Itoa(max(columns, 1))},
		html.Attribute{Key: "style", Val: "border-top: solid 1px #ddd"},
		text(strconv.Itoa(t.Phrase.Value)+" "),
		sub(strconv.Itoa(t.Phrase.DigitSum)+" / "+strconv.Itoa(t.Phrase.DigitalRoot)),
	))
	tfoot.AppendChild(summary)

	table.AppendChild(thead)
	table.AppendChild(tbody)
	table.AppendChild(tfoot)

	return table
}

// Render writes the HTML table to w.
func (t *Table) Render(w io.Writer) error {
	return html.Render(w, t.Node())
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func sub(s string) *html.Node {
	n := element(atom.Sub)
	n.AppendChild(text(s))

	return n
}

// cell builds a th or td; args are attributes or child nodes, in order.
func cell(a atom.Atom, args ...interface{}) *html.Node {
	n := element(a)
	for _, arg := range args {
		switch v := arg.(type) {
		case html.Attribute:
			n.Attr = append(n.Attr, v)
		case *html.Node:
			n.AppendChild(v)
		}
	}

	return n
}
