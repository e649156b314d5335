package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftguard/swiftguard/pkg/models"
)

func TestTouchTargetRule(t *testing.T) {
	rule := DefaultTouchTargetRule()

	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{
			"small_width",
			"Button(action: tap) {\n    Text(\"Go\")\n}\n.frame(width: 30)",
			1,
		},
		{
			"large_width_ok",
			"Button(action: tap) {\n    Text(\"Go\")\n}\n.frame(width: 60)",
			0,
		},
		{
			"exactly_minimum_ok",
			"Button(action: tap) {\n    Text(\"Go\")\n}\n.frame(width: 44)",
			0,
		},
		{
			"small_height",
			"Button(action: tap) {\n    Text(\"Go\")\n}\n.frame(height: 20)",
			1,
		},
		{
			"button_without_frame",
			"Button(action: tap) {\n    Text(\"Go\")\n}",
			0,
		},
		{
			"frame_without_button",
			"Text(\"Go\")\n    .frame(width: 10)",
			0,
		},
		{
			"min_width_modifier_ok",
			"Button(action: tap) {\n    Text(\"Go\")\n}\n.frame(minWidth: 44, minHeight: 44)",
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, rule.Check(tt.code), tt.expected)
		})
	}
}

func TestTouchTargetRuleViolationFields(t *testing.T) {
	code := "VStack {\n    Button(action: tap) {\n        Text(\"Go\")\n    }\n    .frame(width: 30)\n}"
	violations := DefaultTouchTargetRule().Check(code)
	require.Len(t, violations, 1)

	v := violations[0]
	assert.Equal(t, models.SeverityError, v.Severity)
	assert.Equal(t, RuleTouchTarget, v.Rule)
	assert.Equal(t, 2, v.Line)
	assert.Contains(t, v.Message, "30pt")
	assert.Contains(t, v.Message, "minimum 44pt")
}

func TestTouchTargetRuleCustomMinimum(t *testing.T) {
	code := "Button(action: tap) {\n    Text(\"Go\")\n}\n.frame(width: 50)"

	assert.Empty(t, DefaultTouchTargetRule().Check(code))
	assert.Len(t, NewTouchTargetRule(60).Check(code), 1)
}
