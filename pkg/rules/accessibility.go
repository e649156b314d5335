package rules

import (
	"strings"

	"github.com/swiftguard/swiftguard/pkg/models"
	"github.com/swiftguard/swiftguard/pkg/scanner"
)

const RuleAccessibilityLabel = "missing_accessibility_label"

// AccessibilityRule flags image-only buttons that carry no
// .accessibilityLabel() modifier. For each Button( occurrence the rule
// extracts the body via balanced-delimiter scanning, then searches the
// body plus a trailing window (modifiers are chained after the closing
// brace) for an Image( construct without a matching label.
type AccessibilityRule struct {
	// Lookahead is how many characters past the closing brace are
	// searched for the chained .accessibilityLabel modifier.
	Lookahead int
}

// NewAccessibilityRule creates the rule with the given trailing window.
func NewAccessibilityRule(lookahead int) *AccessibilityRule {
	return &AccessibilityRule{Lookahead: lookahead}
}

// DefaultAccessibilityRule returns the rule with a 200-character window.
func DefaultAccessibilityRule() *AccessibilityRule {
	return NewAccessibilityRule(200)
}

func (r *AccessibilityRule) Name() string {
	return RuleAccessibilityLabel
}

func (r *AccessibilityRule) Description() string {
	return "Checks that image-only buttons have an accessibility label."
}

func (r *AccessibilityRule) Check(code string) []models.Violation {
	var violations []models.Violation
	for start := 0; ; {
		idx := strings.Index(code[start:], "Button(")
		if idx == -1 {
			break
		}
		start += idx

		end := scanner.BlockSpan(code, start)
		stop := end + r.Lookahead
		if stop > len(code) {
			stop = len(code)
		}
		snippet := code[start:stop]

		// Buttons with a text label are fine; only image-only buttons
		// need an explicit label for VoiceOver.
		if strings.Contains(snippet, "Image(") && !strings.Contains(snippet, ".accessibilityLabel") {
			violations = append(violations, models.Violation{
				Severity: models.SeverityWarning,
				Rule:     RuleAccessibilityLabel,
				Message:  "Image-only button should have .accessibilityLabel() for VoiceOver support.",
				Line:     scanner.LineNumber(code, start),
			})
		}
		start += len("Button(")
	}
	return violations
}
