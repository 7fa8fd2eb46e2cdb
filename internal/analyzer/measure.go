// Package analyzer runs the lexical scans behind the metrics engine. Every
// scan is a plain function over the source text; Measure sequences them.
package analyzer

import (
	"github.com/pthm/codegauge/internal/language"
)

// Measurements holds the raw, unrounded results of one analysis run
type Measurements struct {
	LinesOfCode    int
	DecisionPoints int
	NestingDepth   int
	CommentLines   int
	Halstead       Halstead
}

// Measure runs every scan over code using the operator table of profile
func Measure(code string, profile *language.Profile) *Measurements {
	return &Measurements{
		LinesOfCode:    CountLines(code),
		DecisionPoints: CountDecisionPoints(code),
		NestingDepth:   MaxNesting(code),
		CommentLines:   CountCommentLines(code),
		Halstead:       MeasureHalstead(code, profile),
	}
}

// CyclomaticComplexity approximates McCabe complexity as decision points + 1
func (m *Measurements) CyclomaticComplexity() int {
	return m.DecisionPoints + 1
}

// CommentDensity returns the percentage of comment matches per line of code.
// The numerator is not clamped: several block comments on one line can push
// the value above 100.
func (m *Measurements) CommentDensity() float64 {
	if m.LinesOfCode == 0 {
		return 0
	}
	return float64(m.CommentLines) / float64(m.LinesOfCode) * 100
}
