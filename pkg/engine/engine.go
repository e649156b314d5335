package engine

import (
	"github.com/swiftguard/swiftguard/pkg/models"
	"github.com/swiftguard/swiftguard/pkg/rules"
)

// Analyzer is the lint orchestrator.
//
// Architecture principles:
//   - Analyzer is rule-agnostic: it never type-switches on concrete rules.
//   - Rules are pure functions over the source text; the analyzer owns no
//     mutable state, so analysis is idempotent and safe to call from
//     multiple goroutines on distinct inputs.
//   - Explainable: every violation names its rule and carries a
//     human-readable message.
//   - Extensible: custom checks implement rules.Rule and are appended via
//     AddRule; they run after the built-in set.
//
// Violation order is deterministic: rules run in registration order and
// each rule reports its matches in text order.
//
// Usage:
//
//	analyzer := engine.New()
//	result := analyzer.Analyze(source)
type Analyzer struct {
	rules []rules.Rule
}

// DefaultRules returns the built-in checks in their fixed execution order.
// The order is part of the observable contract: it determines the order
// of the violations list for a given input.
func DefaultRules() []rules.Rule {
	return []rules.Rule{
		rules.NewFrameSizeRule(),
		rules.NewColorRule(),
		rules.NewFontSizeRule(),
		rules.NewForceUnwrapRule(),
		rules.DefaultTouchTargetRule(),
		rules.NewViewModelStateRule(),
		rules.DefaultAccessibilityRule(),
	}
}

// New creates an Analyzer with the default rule set.
func New() *Analyzer {
	return &Analyzer{rules: DefaultRules()}
}

// NewWithRules creates an Analyzer running exactly the given rules,
// in the given order.
func NewWithRules(rs []rules.Rule) *Analyzer {
	return &Analyzer{rules: rs}
}

// AddRule appends a rule to the analyzer. Rules are evaluated in the
// order they were added.
func (a *Analyzer) AddRule(r rules.Rule) {
	a.rules = append(a.rules, r)
}

// Analyze runs every rule once over the source text and returns the
// merged result. It accepts any input, including empty text and text with
// unbalanced delimiters, and never fails: rules whose trigger pattern is
// absent simply contribute nothing.
func (a *Analyzer) Analyze(code string) *models.AnalysisResult {
	violations := make([]models.Violation, 0)
	for _, r := range a.rules {
		violations = append(violations, r.Check(code)...)
	}
	return models.NewResult(violations)
}
