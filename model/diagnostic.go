package model

// DiagnosticKind distinguishes the two non-aborting failure kinds: a
// recoverable degenerate case, or a root-finder that gave up.
type DiagnosticKind string

const (
	DiagnosticWarning      DiagnosticKind = "WARNING"
	DiagnosticNotConverged DiagnosticKind = "NOT_CONVERGED"
)

// Diagnostic is a non-fatal note surfaced alongside a valid Bundle. It
// never affects numeric correctness — it only explains it.
type Diagnostic struct {
	Kind    DiagnosticKind
	Source  string
	Message string
}
