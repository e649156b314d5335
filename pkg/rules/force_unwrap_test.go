package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftguard/swiftguard/pkg/models"
)

func TestForceUnwrapRule(t *testing.T) {
	rule := NewForceUnwrapRule()

	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{"plain_unwrap", "let name = user.name!", 1},
		{"not_equal_excluded", "x != y", 0},
		{"force_try_excluded", "let data = try! decode()", 0},
		{"inside_comment_excluded", "// foo!", 0},
		{"before_comment_detected", "foo! // comment", 1},
		{"two_unwraps", "a! + b!", 2},
		{"identifier_ending_in_try", "retry!", 0},
		{"empty_input", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, rule.Check(tt.code), tt.expected)
		})
	}
}

func TestForceUnwrapRuleViolationFields(t *testing.T) {
	rule := NewForceUnwrapRule()

	violations := rule.Check("let a = b\nlet c = d\nlet e = f!")
	require.Len(t, violations, 1)

	v := violations[0]
	assert.Equal(t, models.SeverityError, v.Severity)
	assert.Equal(t, RuleForceUnwrap, v.Rule)
	assert.Equal(t, 3, v.Line)
	assert.Contains(t, v.Message, "Force unwrapping")
}
