package rules

import (
	"regexp"

	"github.com/swiftguard/swiftguard/pkg/models"
)

const RuleViewModelState = "missing_viewmodel_state"

var (
	viewModelPattern = regexp.MustCompile(`class\s+\w+ViewModel`)
	stateEnumPattern = regexp.MustCompile(`enum\s+State\s*\{`)
)

// ViewModelStateRule checks that a file declaring a ViewModel class also
// declares a State enum. This is the one file-scoped rule: it yields at
// most one violation per input and that violation carries no line number.
type ViewModelStateRule struct{}

func NewViewModelStateRule() *ViewModelStateRule {
	return &ViewModelStateRule{}
}

func (r *ViewModelStateRule) Name() string {
	return RuleViewModelState
}

func (r *ViewModelStateRule) Description() string {
	return "Checks that ViewModel classes expose a State enum."
}

func (r *ViewModelStateRule) Check(code string) []models.Violation {
	if !viewModelPattern.MatchString(code) {
		return nil
	}
	if stateEnumPattern.MatchString(code) {
		return nil
	}
	return []models.Violation{{
		Severity: models.SeverityWarning,
		Rule:     RuleViewModelState,
		Message:  "ViewModel should expose a State enum (e.g., idle, loading, content, error) for state management.",
	}}
}
