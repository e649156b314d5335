package models

// Severity classifies how serious a violation is.
// There are exactly two levels; rules never escalate based on matched content.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Violation represents a single rule finding in the analyzed source.
// Violations are created once by a rule and never mutated afterwards.
type Violation struct {
	// Severity is fixed per rule (error or warning).
	Severity Severity `json:"severity"`

	// Rule is the stable identifier of the rule that fired (e.g. "force_unwrapping").
	Rule string `json:"rule"`

	// Message is a human-readable explanation. It may embed a matched
	// value, such as a size in points.
	Message string `json:"message"`

	// Line is the 1-based line number of the match in the source text.
	// Zero means the violation is file-scoped (e.g. missing_viewmodel_state)
	// and carries no line; the field is then omitted from JSON output.
	Line int `json:"line,omitempty"`
}
