// Package rules turns raw measurements into a quality score, a rating and
// the recommendations that explain it.
package rules

import (
	"github.com/pthm/codegauge/internal/analyzer"
)

// Severity represents how strongly a breached threshold affects quality
type Severity int

const (
	Info Severity = iota
	Suggestion
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Suggestion:
		return "suggestion"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Issue represents a breached threshold
type Issue struct {
	Rule     string
	Severity Severity
	Penalty  int
	Message  string
}

// Rule defines the interface for quality threshold rules
type Rule interface {
	// Name returns the unique identifier for this rule
	Name() string

	// Description returns a human-readable description
	Description() string

	// Severity returns the severity of issues raised by this rule
	Severity() Severity

	// Penalty is subtracted from the quality score when the rule fires
	Penalty() int

	// Recommendation is the advice attached to a fired rule
	Recommendation() string

	// Breached reports whether the measurements cross the rule's threshold.
	// Rules always look at unrounded values.
	Breached(m *analyzer.Measurements) bool
}

// Check runs a single rule, returning the issue it raises if any
func Check(r Rule, m *analyzer.Measurements) (Issue, bool) {
	if !r.Breached(m) {
		return Issue{}, false
	}
	return Issue{
		Rule:     r.Name(),
		Severity: r.Severity(),
		Penalty:  r.Penalty(),
		Message:  r.Recommendation(),
	}, true
}
