package rules

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/swiftguard/swiftguard/pkg/models"
	"github.com/swiftguard/swiftguard/pkg/scanner"
)

const RuleTouchTarget = "touch_target_too_small"

// touchTargetPattern locates a Button, its brace-delimited body (lazy
// span) and the first fixed .frame size that follows. The captured group
// is the literal width or height value.
var touchTargetPattern = regexp.MustCompile(`Button\(.*?\)\s*\{[\s\S]*?\}[\s\S]*?\.frame\(.*?(?:width|height):\s*(\d+)\)`)

// TouchTargetRule flags interactive controls whose fixed frame size falls
// below the minimum comfortable touch target.
type TouchTargetRule struct {
	// MinSize is the smallest acceptable width/height in points.
	MinSize int
}

// NewTouchTargetRule creates the rule with the given minimum size.
// The HIG minimum is 44pt.
func NewTouchTargetRule(minSize int) *TouchTargetRule {
	return &TouchTargetRule{MinSize: minSize}
}

// DefaultTouchTargetRule returns the rule with the 44pt HIG minimum.
func DefaultTouchTargetRule() *TouchTargetRule {
	return NewTouchTargetRule(44)
}

func (r *TouchTargetRule) Name() string {
	return RuleTouchTarget
}

func (r *TouchTargetRule) Description() string {
	return fmt.Sprintf("Detects interactive controls smaller than the %dpt minimum touch target.", r.MinSize)
}

func (r *TouchTargetRule) Check(code string) []models.Violation {
	var violations []models.Violation
	for _, m := range touchTargetPattern.FindAllStringSubmatchIndex(code, -1) {
		size, err := strconv.Atoi(code[m[2]:m[3]])
		if err != nil {
			continue
		}
		if size >= r.MinSize {
			continue
		}
		violations = append(violations, models.Violation{
			Severity: models.SeverityError,
			Rule:     RuleTouchTarget,
			Message:  fmt.Sprintf("Touch target size is %dpt, which is below the minimum %dpt. Use .frame(minWidth: 44, minHeight: 44) or add .contentShape(Rectangle()).", size, r.MinSize),
			Line:     scanner.LineNumber(code, m[0]),
		})
	}
	return violations
}
