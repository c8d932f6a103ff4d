package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentflare-ai/go-xmldom"
	"github.com/agentflare-ai/go-xsd"
)

const xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"

// resolveSchema decides which schema governs the document and compiles it.
// The override wins unconditionally; otherwise the document's
// xsi:noNamespaceSchemaLocation is read from the root element and treated
// as a URL or as a path relative to the document's own directory.
//
// The returned Outcome is Valid when a schema was resolved; otherwise it
// names the failure (Skipped when no schema is declared at all).
func (r *Runner) resolveSchema(xmlPath string, doc xmldom.Document) (*xsd.Schema, Outcome, error) {
	if r.Override != "" {
		schema, err := xsd.LoadSchema(r.Override)
		if err != nil {
			return nil, SchemaUnavailable, fmt.Errorf("load schema %s: %w", r.Override, err)
		}
		return schema, Valid, nil
	}

	root := doc.DocumentElement()
	if root == nil {
		return nil, ParseError, fmt.Errorf("document %s has no root element", xmlPath)
	}

	loc := strings.TrimSpace(string(root.GetAttributeNS(xsiNamespace, "noNamespaceSchemaLocation")))
	if loc == "" {
		return nil, Skipped, nil
	}

	if strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://") {
		schema, err := r.fetchSchema(loc)
		if err != nil {
			return nil, SchemaUnavailable, err
		}
		return schema, Valid, nil
	}

	// Relative to the directory containing the XML file.
	schemaPath := filepath.Join(filepath.Dir(xmlPath), loc)
	if _, err := os.Stat(schemaPath); err != nil {
		return nil, SchemaUnavailable, fmt.Errorf("XSD file %q not found", schemaPath)
	}
	schema, err := xsd.LoadSchema(schemaPath)
	if err != nil {
		return nil, SchemaUnavailable, fmt.Errorf("load schema %s: %w", schemaPath, err)
	}
	return schema, Valid, nil
}
