package metrics

import (
	"github.com/pthm/codegauge/internal/analyzer"
	"github.com/pthm/codegauge/internal/language"
	"github.com/pthm/codegauge/internal/rules"
)

// Analyze computes the quality profile of code written in lang. Unknown
// language tags are analyzed with the java table. Analyze never fails:
// empty or non-code input yields degenerate but well-defined metrics.
func Analyze(code, lang string) *Record {
	return AnalyzeWith(code, language.Lookup(lang), rules.DefaultRegistry())
}

// AnalyzeWith computes the quality profile using an explicit profile and
// rule registry
func AnalyzeWith(code string, profile *language.Profile, registry *rules.Registry) *Record {
	m := analyzer.Measure(code, profile)
	eval := registry.Evaluate(m)
	density := round(m.CommentDensity(), 2)

	return &Record{
		LinesOfCode:          m.LinesOfCode,
		CyclomaticComplexity: m.CyclomaticComplexity(),
		Halstead: HalsteadMetrics{
			Volume:     round(m.Halstead.Volume(), 0),
			Difficulty: round(m.Halstead.Difficulty(), 2),
			Effort:     round(m.Halstead.Effort(), 0),
		},
		NestingDepth:      m.NestingDepth,
		CommentDensity:    min(density, 100),
		RawCommentDensity: density,
		QualityRating:     eval.Rating,
		Recommendations:   eval.Recommendations(),
	}
}
