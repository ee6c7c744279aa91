package markup

import (
	"html"
	"regexp"
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// bodyContext parses fragments the way an element's innerHTML is parsed.
var bodyContext = &nethtml.Node{
	Type:     nethtml.ElementNode,
	Data:     "body",
	DataAtom: atom.Body,
}

var allTags = regexp.MustCompile(`<[^>]+>`)

// PlainText returns the character data of markup in document order with
// entities decoded. A line break separates block elements and replaces
// <br>; no other whitespace is added or removed.
func PlainText(markup string) string {
	if markup == "" {
		return ""
	}

	nodes, err := nethtml.ParseFragment(strings.NewReader(markup), bodyContext)
	if err != nil {
		return html.UnescapeString(allTags.ReplaceAllString(markup, ""))
	}

	var b strings.Builder
	for _, n := range nodes {
		writeText(&b, n)
	}
	return b.String()
}

func writeText(b *strings.Builder, n *nethtml.Node) {
	switch n.Type {
	case nethtml.TextNode:
		b.WriteString(n.Data)
		return
	case nethtml.ElementNode:
		if n.DataAtom == atom.Br {
			b.WriteByte('\n')
			return
		}
		if isBlockElement(n.DataAtom) && b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
			b.WriteByte('\n')
		}
	case nethtml.CommentNode, nethtml.DoctypeNode:
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
}

func isBlockElement(a atom.Atom) bool {
	switch a {
	case atom.Div, atom.P, atom.Li, atom.Blockquote, atom.Pre, atom.Tr,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	default:
		return false
	}
}
