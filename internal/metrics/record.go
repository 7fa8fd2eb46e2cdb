// Package metrics is the entry point of the static metrics engine.
//
// Analyze is pure: it performs no IO, keeps no state between calls and is
// safe to call from any number of goroutines.
package metrics

import (
	"math"

	"github.com/pthm/codegauge/internal/rules"
)

// HalsteadMetrics holds the rounded software science measures
type HalsteadMetrics struct {
	Volume     float64 `json:"volume" yaml:"volume"`
	Difficulty float64 `json:"difficulty" yaml:"difficulty"`
	Effort     float64 `json:"effort" yaml:"effort"`
}

// Record is the quality profile of one block of source code
type Record struct {
	LinesOfCode          int             `json:"linesOfCode" yaml:"linesOfCode"`
	CyclomaticComplexity int             `json:"cyclomaticComplexity" yaml:"cyclomaticComplexity"`
	Halstead             HalsteadMetrics `json:"halsteadMetrics" yaml:"halsteadMetrics"`
	NestingDepth         int             `json:"nestingDepth" yaml:"nestingDepth"`
	CommentDensity       float64         `json:"commentDensity" yaml:"commentDensity"`
	// RawCommentDensity is the uncapped density the rules were scored on;
	// it exceeds 100 when several comments share a line.
	RawCommentDensity float64      `json:"rawCommentDensity" yaml:"rawCommentDensity"`
	QualityRating     rules.Rating `json:"qualityRating" yaml:"qualityRating"`
	Recommendations   []string     `json:"recommendations" yaml:"recommendations"`
}

// round rounds half away from zero to the given number of decimals.
// All inputs are non-negative, so this matches rounding half up.
func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
