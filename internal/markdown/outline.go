// Package markdown reads the structure of a Markdown document: its title,
// sections, list items, bold terms and table rows. It is used to summarise the
// schema reference document and to check it against the catalog.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Document is the outline of a Markdown document.
type Document struct {
	Title    string
	Sections []*Section
}

// Section groups the content found under a level 2 (or deeper) heading until
// the next heading.
type Section struct {
	Heading string
	Level   int
	// Items holds the plain text of every list item.
	Items []string
	// Terms holds the first bold span of each list item that has one.
	Terms []string
	// Header and Rows hold table cells as plain text.
	Header []string
	Rows   [][]string
}

// Section returns the first section whose heading matches name
// (case-insensitive), or nil.
func (d *Document) Section(name string) *Section {
	for _, s := range d.Sections {
		if strings.EqualFold(s.Heading, name) {
			return s
		}
	}
	return nil
}

// Pairs splits every "Key: Value" list item into an ordered key/value list.
// Items without a colon are skipped.
func (s *Section) Pairs() [][2]string {
	var out [][2]string
	for _, item := range s.Items {
		k, v, ok := strings.Cut(item, ":")
		if !ok {
			continue
		}
		out = append(out, [2]string{strings.TrimSpace(k), strings.TrimSpace(v)})
	}
	return out
}

// Column returns the cells of column i for every table row. Rows shorter than
// i+1 cells contribute an empty string.
func (s *Section) Column(i int) []string {
	out := make([]string, 0, len(s.Rows))
	for _, row := range s.Rows {
		if i < len(row) {
			out = append(out, row[i])
			continue
		}
		out = append(out, "")
	}
	return out
}

var engine = goldmark.New(goldmark.WithExtensions(extension.Table))

// Outline parses src and returns its outline. Parsing Markdown cannot fail;
// the error return is kept for callers that read src from elsewhere.
func Outline(src []byte) (*Document, error) {
	root := engine.Parser().Parse(text.NewReader(src))

	doc := &Document{}
	var current *Section

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			title := nodeText(node, src)
			if node.Level == 1 && doc.Title == "" {
				doc.Title = title
				return ast.WalkSkipChildren, nil
			}
			current = &Section{Heading: title, Level: node.Level}
			doc.Sections = append(doc.Sections, current)
			return ast.WalkSkipChildren, nil

		case *ast.ListItem:
			if current == nil {
				return ast.WalkSkipChildren, nil
			}
			current.Items = append(current.Items, nodeText(node, src))
			if term, ok := firstStrong(node, src); ok {
				current.Terms = append(current.Terms, term)
			}
			return ast.WalkSkipChildren, nil

		case *east.Table:
			if current == nil {
				return ast.WalkSkipChildren, nil
			}
			readTable(current, node, src)
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func readTable(s *Section, table *east.Table, src []byte) {
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, nodeText(cell, src))
		}
		switch row.(type) {
		case *east.TableHeader:
			s.Header = cells
		case *east.TableRow:
			s.Rows = append(s.Rows, cells)
		}
	}
}

// firstStrong returns the text of the first bold span below n.
func firstStrong(n ast.Node, src []byte) (string, bool) {
	var found string
	ok := false
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if em, isEm := c.(*ast.Emphasis); isEm && em.Level == 2 {
			found = nodeText(em, src)
			ok = true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return found, ok
}

// nodeText flattens the inline text below n. Code spans contribute their
// content without backticks; soft line breaks become spaces.
func nodeText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	writeText(&buf, n, src)
	return strings.TrimSpace(buf.String())
}

func writeText(buf *bytes.Buffer, n ast.Node, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			buf.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(node.Value)
		default:
			if c.Type() == ast.TypeBlock && buf.Len() > 0 {
				buf.WriteByte(' ')
			}
			writeText(buf, c, src)
		}
	}
}
