package scrape

import (
	"fmt"
	"iter"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Record is one student pulled out of the grade sheet. Only ID is
// required; the remaining fields may be empty.
type Record struct {
	ID     string
	Name   string
	Course string
	Year   string
}

// Keep reports whether the record carries enough data to retain.
func (r Record) Keep() bool { return strings.TrimSpace(r.ID) != "" }

// rowID matches the id attribute of student rows, anchored at both ends
// so ids like "msg" or "msg1b" never qualify.
var rowID = regexp.MustCompile(`^msg[0-9]+$`)

// Parse builds a document tree from decoded markup. html.Parse applies
// WHATWG error recovery — unclosed tags are auto-closed, stray closers
// ignored, unknown tags treated as containers — so malformed legacy
// pages do not surface errors here.
func Parse(text string) (*html.Node, error) {
	node, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return node, nil
}

// Rows yields every <tr class="nav" id="msgN"> element in document
// order. The sequence is lazy; ranging over it again restarts the walk
// from the root.
func Rows(doc *html.Node) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		var walk func(*html.Node) bool
		walk = func(n *html.Node) bool {
			if isStudentRow(n) && !yield(n) {
				return false
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if !walk(c) {
					return false
				}
			}
			return true
		}
		walk(doc)
	}
}

func isStudentRow(n *html.Node) bool {
	if n.Type != html.ElementNode || !strings.EqualFold(n.Data, "tr") {
		return false
	}
	return attr(n, "class") == "nav" && rowID.MatchString(attr(n, "id"))
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// FromRow extracts one Record from a student row. Cells 1 through 4
// (0-based) hold ID, name, course and year; each value is the trimmed
// text of the first <font> element nested in the cell, or empty when
// the cell has none. A row with fewer than five cells cannot be
// indexed and is reported as unusable; the caller decides whether to
// continue with the remaining rows.
func FromRow(row *html.Node) (Record, error) {
	cells := rowCells(row)
	if len(cells) < 5 {
		return Record{}, fmt.Errorf("row %q: want at least 5 cells, got %d", attr(row, "id"), len(cells))
	}
	return Record{
		ID:     fontText(cells[1]),
		Name:   fontText(cells[2]),
		Course: fontText(cells[3]),
		Year:   fontText(cells[4]),
	}, nil
}

// rowCells collects the row's <td> elements in document order, without
// descending into a cell for further cells.
func rowCells(row *html.Node) []*html.Node {
	var cells []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && strings.EqualFold(n.Data, "td") {
			cells = append(cells, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return cells
}

// fontText returns the trimmed concatenated text of the first <font>
// element inside the cell, or "" when the cell has no styling element.
func fontText(cell *html.Node) string {
	f := findFirst(cell, "font")
	if f == nil {
		return ""
	}
	var b strings.Builder
	collectText(&b, f)
	return strings.TrimSpace(b.String())
}

func findFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		dfs(c)
		if res != nil {
			break
		}
	}
	return res
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}
