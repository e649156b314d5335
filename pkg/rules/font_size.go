package rules

import (
	"fmt"
	"regexp"

	"github.com/swiftguard/swiftguard/pkg/models"
	"github.com/swiftguard/swiftguard/pkg/scanner"
)

const RuleFontSize = "hardcoded_font_size"

var fontSizePattern = regexp.MustCompile(`\.font\(\.system\(size:\s*(\d+)\)`)

// FontSizeRule flags literal point sizes passed to .font(.system(size:)),
// which break Dynamic Type scaling.
type FontSizeRule struct{}

func NewFontSizeRule() *FontSizeRule {
	return &FontSizeRule{}
}

func (r *FontSizeRule) Name() string {
	return RuleFontSize
}

func (r *FontSizeRule) Description() string {
	return "Detects hardcoded font sizes instead of semantic text styles."
}

func (r *FontSizeRule) Check(code string) []models.Violation {
	var violations []models.Violation
	for _, m := range fontSizePattern.FindAllStringSubmatchIndex(code, -1) {
		size := code[m[2]:m[3]]
		violations = append(violations, models.Violation{
			Severity: models.SeverityWarning,
			Rule:     RuleFontSize,
			Message:  fmt.Sprintf("Hardcoded font size: %spt. Use semantic text styles (e.g., .body, .headline) for Dynamic Type support.", size),
			Line:     scanner.LineNumber(code, m[0]),
		})
	}
	return violations
}
