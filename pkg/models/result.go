package models

// StatusSuccess is the status reported on every completed analysis.
// Error statuses are produced by the transport adapters, never by the engine.
const StatusSuccess = "success"

// Summary holds the derived violation counts for one analysis.
//
// Invariants: Total == len(AnalysisResult.Violations) and
// Errors + Warnings == Total (severity is always one of the two values).
type Summary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// AnalysisResult contains the complete output of one analysis request.
//
// Violations appear in detection order: rule registration order first,
// then match order within a rule. They are not sorted by line.
// Nothing in the result outlives the request; the engine computes a
// fresh result for every call.
type AnalysisResult struct {
	Status     string      `json:"status"`
	Violations []Violation `json:"violations"`
	Summary    Summary     `json:"summary"`
}

// NewResult builds an AnalysisResult from the collected violations,
// deriving the summary counts.
func NewResult(violations []Violation) *AnalysisResult {
	summary := Summary{Total: len(violations)}
	for _, v := range violations {
		if v.Severity == SeverityError {
			summary.Errors++
		} else {
			summary.Warnings++
		}
	}
	return &AnalysisResult{
		Status:     StatusSuccess,
		Violations: violations,
		Summary:    summary,
	}
}
