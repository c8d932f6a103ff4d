package check

import "github.com/agentflare-ai/go-xsd"

// Outcome classifies what happened to a single file. The distinctions
// match the printed messages: a file with no declared schema is skipped,
// not failed, and a missing schema is not the same as a schema violation.
type Outcome int

const (
	// Valid means the document satisfied its schema.
	Valid Outcome = iota
	// SchemaViolation means the document is well-formed XML but breaks
	// one or more structural rules of its schema.
	SchemaViolation
	// ParseError means the document itself could not be parsed as XML.
	ParseError
	// SchemaUnavailable means the governing schema could not be obtained:
	// fetch failure, missing local file, or malformed XSD.
	SchemaUnavailable
	// Skipped means no schema was declared and no override was given.
	// It counts as neither pass nor fail.
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Valid:
		return "valid"
	case SchemaViolation:
		return "schema-violation"
	case ParseError:
		return "parse-error"
	case SchemaUnavailable:
		return "schema-unavailable"
	case Skipped:
		return "skipped"
	}
	return "unknown"
}

// Result is the outcome of validating one file. Diagnostics holds the
// engine's violation list, in engine order, when Outcome is SchemaViolation.
type Result struct {
	Path        string
	Outcome     Outcome
	Err         error
	Diagnostics []xsd.Diagnostic
}

// StrictFailure reports whether any result should fail a --strict run.
// Skipped files count: a file nobody judged is not a pass.
func StrictFailure(results []Result) bool {
	for _, res := range results {
		if res.Outcome != Valid {
			return true
		}
	}
	return false
}
