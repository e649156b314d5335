package rules

import "github.com/swiftguard/swiftguard/pkg/models"

// Rule is the interface every lint check implements.
//
// A rule is a pure function over the source text: it scans the full text
// for one kind of problem and returns zero or more violations. Rules hold
// no mutable state, never see each other's output and never fail — when
// the trigger pattern is absent they return nothing.
type Rule interface {
	// Name is the stable rule identifier (e.g. "hardcoded_color").
	Name() string

	// Description explains in one sentence what the rule looks for.
	Description() string

	// Check scans the source text and returns the violations found,
	// in match order.
	Check(code string) []models.Violation
}
