// Package check resolves the schema governing an XML document and runs the
// XSD engine against it. Every file is validated independently: each call
// constructs its own document and schema instance, so results never share
// state across files.
package check

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/agentflare-ai/go-xmldom"
	"github.com/agentflare-ai/go-xsd"

	"github.com/ormasoftchile/xmlvet/pkg/report"
)

// Runner validates files and prints one status line per file through
// its Reporter.
type Runner struct {
	// Override is a local XSD path that wins over any schema location
	// declared inside the documents.
	Override string

	// FetchTimeout bounds remote schema downloads. Zero means
	// DefaultFetchTimeout.
	FetchTimeout time.Duration

	// Client is the HTTP client used for remote schemas. Nil means
	// http.DefaultClient.
	Client *http.Client

	Reporter *report.Reporter
}

// CheckFile validates a single XML file and reports its status.
func (r *Runner) CheckFile(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return r.report(Result{
			Path:    path,
			Outcome: ParseError,
			Err:     fmt.Errorf("read document: %w", err),
		})
	}

	doc, err := xmldom.NewDecoderFromBytes(data).Decode()
	if err != nil {
		return r.report(Result{
			Path:    path,
			Outcome: ParseError,
			Err:     fmt.Errorf("parse document: %w", err),
		})
	}

	schema, outcome, err := r.resolveSchema(path, doc)
	if outcome != Valid {
		return r.report(Result{Path: path, Outcome: outcome, Err: err})
	}

	violations := xsd.NewValidator(schema).Validate(doc)
	if len(violations) == 0 {
		return r.report(Result{Path: path, Outcome: Valid})
	}

	diags := xsd.NewDiagnosticConverter(path, string(data)).Convert(violations)
	return r.report(Result{
		Path:        path,
		Outcome:     SchemaViolation,
		Diagnostics: diags,
	})
}

// report prints the status line(s) for a result and passes it through.
func (r *Runner) report(res Result) Result {
	rep := r.Reporter
	if rep == nil {
		return res
	}
	switch res.Outcome {
	case Valid:
		rep.Pass("[OK] %s is valid.", res.Path)
	case SchemaViolation:
		rep.Fail("[KO] %s is NOT valid.", res.Path)
		for _, d := range res.Diagnostics {
			rep.Detail("  %s:%d:%d: %s (%s)",
				res.Path, d.Position.Line, d.Position.Column, d.Message, d.Code)
		}
	case Skipped:
		rep.Warn("[WARNING] No XSD location found in %s. Skipping validation.", res.Path)
	case ParseError:
		rep.Error("[ERROR] Failed to validate %s: %v", res.Path, res.Err)
	case SchemaUnavailable:
		rep.Error("[ERROR] %v", res.Err)
	}
	return res
}
