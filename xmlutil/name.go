package xmlutil

import (
	"encoding/xml"

	"github.com/antchfx/xmlquery"
)

// Name returns the XML name of an element node, with the namespace URI
// in Space.
func Name(n *xmlquery.Node) xml.Name {
	return xml.Name{Space: n.NamespaceURI, Local: n.Data}
}

// IsElement reports whether n is an element with the local name local.
// Namespaces are not considered; ESI documents are unqualified.
func IsElement(n *xmlquery.Node, local string) bool {
	return n != nil && n.Type == xmlquery.ElementNode && n.Data == local
}
