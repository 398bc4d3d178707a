// Package diag provides diagnostic (error/warning) types for the compiler.
package diag

import (
	"fmt"

	"yoptascript/internal/span"
)

// Severity indicates the severity of a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single compiler message tied to a source range.
// Diagnostics accumulate in emission order; that order is observable.
type Diagnostic struct {
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	Span     span.Span `json:"span"`
}

// String renders the diagnostic in "<severity>: <message>" form.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// Errorf creates an error diagnostic at the given span.
func Errorf(s span.Span, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Span:     s,
	}
}

// Warningf creates a warning diagnostic at the given span.
func Warningf(s span.Span, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Severity: Warning,
		Message:  fmt.Sprintf(format, args...),
		Span:     s,
	}
}

// HasErrors reports whether any diagnostic in the list is error-severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}
