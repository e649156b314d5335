package rules

import (
	"regexp"

	"github.com/swiftguard/swiftguard/pkg/models"
	"github.com/swiftguard/swiftguard/pkg/scanner"
)

const RuleColor = "hardcoded_color"

// colorPatterns cover the common literal color constructor spellings.
// Each pattern contributes matches independently; overlapping hits (a
// UIColor(red: call also contains Color(red:) are reported separately,
// not deduplicated.
var colorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`Color\(red:\s*[\d.]+`),
	regexp.MustCompile(`Color\(\.sRGB,\s*red:`),
	regexp.MustCompile(`Color\(hue:\s*[\d.]+`),
	regexp.MustCompile(`UIColor\(red:\s*[\d.]+`),
}

// ColorRule flags literal RGB/HSB color constructors, which bypass
// semantic and Asset Catalog colors.
type ColorRule struct{}

func NewColorRule() *ColorRule {
	return &ColorRule{}
}

func (r *ColorRule) Name() string {
	return RuleColor
}

func (r *ColorRule) Description() string {
	return "Detects hardcoded RGB/HSB colors instead of semantic colors."
}

func (r *ColorRule) Check(code string) []models.Violation {
	var violations []models.Violation
	for _, re := range colorPatterns {
		for _, m := range re.FindAllStringIndex(code, -1) {
			violations = append(violations, models.Violation{
				Severity: models.SeverityWarning,
				Rule:     RuleColor,
				Message:  "Hardcoded RGB/HSB color. Use semantic colors (e.g., .primary, .systemBackground) or Asset Catalog colors.",
				Line:     scanner.LineNumber(code, m[0]),
			})
		}
	}
	return violations
}
