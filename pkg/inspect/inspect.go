// Package inspect profiles XML documents without validating them: root
// element, namespace declarations, and the declared schema location.
// It answers "why was my file skipped" before reaching for the validator.
package inspect

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

const xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"

var (
	xpRootElement = xpath.MustCompile(`/*`)
	xpAllElements = xpath.MustCompile(`//*`)
)

// Profile describes a document's shape as relevant to schema resolution.
type Profile struct {
	Root           string
	RootNamespace  string
	SchemaLocation string            // value of xsi:noNamespaceSchemaLocation, if any
	Remote         bool              // SchemaLocation is an HTTP(S) URL
	Namespaces     map[string]string // prefix -> URI declared on the root
	Elements       int
}

// File profiles the document at path.
func File(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read profiles a document from r.
func Read(r io.Reader) (*Profile, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	root := xmlquery.QuerySelector(doc, xpRootElement)
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}

	p := &Profile{
		Root:          root.Data,
		RootNamespace: root.NamespaceURI,
		Namespaces:    make(map[string]string),
	}
	for _, attr := range root.Attr {
		switch {
		case attr.Name.Space == "xmlns":
			p.Namespaces[attr.Name.Local] = attr.Value
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			p.Namespaces[""] = attr.Value
		case attr.Name.Local == "noNamespaceSchemaLocation" &&
			(attr.NamespaceURI == xsiNamespace || attr.Name.Space == xsiNamespace):
			loc := strings.TrimSpace(attr.Value)
			p.SchemaLocation = loc
			p.Remote = strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://")
		}
	}

	p.Elements = len(xmlquery.QuerySelectorAll(doc, xpAllElements))
	return p, nil
}
