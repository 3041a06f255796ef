package xmlutil

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// Attr returns the value of the attribute of n with the local name
// local, ignoring any prefix.
func Attr(n *xmlquery.Node, local string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// AttrPtr is Attr returning nil when the attribute is absent.
func AttrPtr(n *xmlquery.Node, local string) *string {
	if v, ok := Attr(n, local); ok {
		return &v
	}
	return nil
}

// Elements returns the element children of n in document order.
func Elements(n *xmlquery.Node) (out []*xmlquery.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// Child returns the first element child of n named local, or nil.
func Child(n *xmlquery.Node, local string) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if IsElement(c, local) {
			return c
		}
	}
	return nil
}

// Text returns the text content of n with surrounding whitespace
// removed.
func Text(n *xmlquery.Node) string { return strings.TrimSpace(n.InnerText()) }

// ChildText returns the text of the first child element named local,
// or nil when there is no such child.
func ChildText(n *xmlquery.Node, local string) *string {
	if c := Child(n, local); c != nil {
		s := Text(c)
		return &s
	}
	return nil
}

// Value returns a named field of n, which vendor dialects write either
// as an attribute or as a child element. The attribute wins when both
// are present. Attribute values are trimmed like element text.
func Value(n *xmlquery.Node, name string) *string {
	if v, ok := Attr(n, name); ok {
		v = strings.TrimSpace(v)
		return &v
	}
	return ChildText(n, name)
}

// OwnText returns the character data directly inside n, excluding the
// text of child elements, with surrounding whitespace removed.
func OwnText(n *xmlquery.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.TextNode || c.Type == xmlquery.CharDataNode {
			b.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(b.String())
}
