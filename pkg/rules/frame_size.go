package rules

import (
	"fmt"
	"regexp"

	"github.com/swiftguard/swiftguard/pkg/models"
	"github.com/swiftguard/swiftguard/pkg/scanner"
)

const RuleFrameSize = "hardcoded_frame_size"

// frameSizePatterns are scanned independently; each match yields one violation.
var frameSizePatterns = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`\.frame\(width:\s*(\d+)\)`), "Hardcoded frame width"},
	{regexp.MustCompile(`\.frame\(height:\s*(\d+)\)`), "Hardcoded frame height"},
}

// FrameSizeRule flags literal width/height values passed to .frame(),
// which bypass semantic layout tokens.
type FrameSizeRule struct{}

func NewFrameSizeRule() *FrameSizeRule {
	return &FrameSizeRule{}
}

func (r *FrameSizeRule) Name() string {
	return RuleFrameSize
}

func (r *FrameSizeRule) Description() string {
	return "Detects hardcoded frame sizes instead of semantic layout tokens."
}

func (r *FrameSizeRule) Check(code string) []models.Violation {
	var violations []models.Violation
	for _, p := range frameSizePatterns {
		for _, m := range p.re.FindAllStringSubmatchIndex(code, -1) {
			size := code[m[2]:m[3]]
			violations = append(violations, models.Violation{
				Severity: models.SeverityWarning,
				Rule:     RuleFrameSize,
				Message:  fmt.Sprintf("%s: %spt. Consider using minWidth/minHeight or semantic tokens.", p.label, size),
				Line:     scanner.LineNumber(code, m[0]),
			})
		}
	}
	return violations
}
