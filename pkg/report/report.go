// Package report renders per-file validation status lines with semantic
// colors (pass, fail, warning, detail). All console output of the checker
// goes through one Reporter so the line format stays uniform.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode controls color output.
type Mode string

const (
	ModeAuto   Mode = "auto"   // detect terminal capabilities
	ModeAlways Mode = "always" // force ANSI colors even when piped
	ModeNever  Mode = "never"  // plain text
)

// Reporter writes colored status lines to a single destination.
type Reporter struct {
	out io.Writer

	pass   lipgloss.Style
	fail   lipgloss.Style
	warn   lipgloss.Style
	errSt  lipgloss.Style
	detail lipgloss.Style
}

// New builds a Reporter writing to out. ModeAuto defers to lipgloss's
// terminal detection; ModeAlways and ModeNever pin the color profile.
func New(out io.Writer, mode Mode) *Reporter {
	r := lipgloss.NewRenderer(out)
	switch mode {
	case ModeAlways:
		r.SetColorProfile(termenv.ANSI256)
	case ModeNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return &Reporter{
		out:    out,
		pass:   r.NewStyle().Foreground(colorGreen),
		fail:   r.NewStyle().Foreground(colorRed).Bold(true),
		warn:   r.NewStyle().Foreground(colorYellow),
		errSt:  r.NewStyle().Foreground(colorRed),
		detail: r.NewStyle().Foreground(colorDim),
	}
}

// Pass prints a success status line.
func (r *Reporter) Pass(format string, args ...any) {
	r.line(r.pass, format, args...)
}

// Fail prints a validation failure status line.
func (r *Reporter) Fail(format string, args ...any) {
	r.line(r.fail, format, args...)
}

// Warn prints a warning line (e.g. a skipped file).
func (r *Reporter) Warn(format string, args ...any) {
	r.line(r.warn, format, args...)
}

// Error prints an error line for files that could not be validated.
func (r *Reporter) Error(format string, args ...any) {
	r.line(r.errSt, format, args...)
}

// Detail prints a dimmed continuation line, used for individual
// schema violations under a [KO] header.
func (r *Reporter) Detail(format string, args ...any) {
	r.line(r.detail, format, args...)
}

func (r *Reporter) line(st lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(r.out, st.Render(fmt.Sprintf(format, args...)))
}
