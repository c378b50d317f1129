package main

import (
	"io"

	"github.com/npillmayer/csdb"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func cell(a atom.Atom, s string) *html.Node {
	c := element(a)
	c.AppendChild(textNode(s))
	return c
}

// exportHTML renders all records of db, in key order, as an HTML document
// holding a single table.
func exportHTML(w io.Writer, db *csdb.DB) error {
	table := element(atom.Table, html.Attribute{Key: "class", Val: "csdb"})
	header := element(atom.Tr)
	header.AppendChild(cell(atom.Th, "Key"))
	header.AppendChild(cell(atom.Th, "Value"))
	table.AppendChild(header)
	err := db.Ascend(func(k string, v []byte) bool {
		tr := element(atom.Tr)
		tr.AppendChild(cell(atom.Td, k))
		tr.AppendChild(cell(atom.Td, string(v)))
		table.AppendChild(tr)
		return true
	})
	if err != nil {
		return err
	}
	head := element(atom.Head)
	head.AppendChild(cell(atom.Title, "csdb records"))
	body := element(atom.Body)
	body.AppendChild(table)
	root := element(atom.Html)
	root.AppendChild(head)
	root.AppendChild(body)
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)
	return html.Render(w, doc)
}
