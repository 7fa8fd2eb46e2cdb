package rules

import (
	"github.com/pthm/codegauge/internal/analyzer"
)

// Rating is the coarse quality grade derived from the score
type Rating string

const (
	Excellent Rating = "excellent"
	Good      Rating = "good"
	Fair      Rating = "fair"
	Poor      Rating = "poor"
)

// MaxScore is the score of code that breaches no rule
const MaxScore = 100

// ExcellentRecommendation is the only recommendation when no rule fires
const ExcellentRecommendation = "Code quality is excellent! Continue following best practices."

// RatingFor maps a score onto a rating. Scores may be negative.
func RatingFor(score int) Rating {
	switch {
	case score >= 80:
		return Excellent
	case score >= 60:
		return Good
	case score >= 40:
		return Fair
	default:
		return Poor
	}
}

// Evaluation is the outcome of running a registry over one measurement set
type Evaluation struct {
	Score  int
	Rating Rating
	Issues []Issue
}

// Evaluate runs every rule in order and folds the penalties into a score
func (r *Registry) Evaluate(m *analyzer.Measurements) *Evaluation {
	e := &Evaluation{Score: MaxScore}
	for _, rule := range r.rules {
		issue, ok := Check(rule, m)
		if !ok {
			continue
		}
		e.Score -= issue.Penalty
		e.Issues = append(e.Issues, issue)
	}
	e.Rating = RatingFor(e.Score)
	return e
}

// Recommendations returns one entry per issue in rule order, or the single
// positive entry when nothing fired
func (e *Evaluation) Recommendations() []string {
	if len(e.Issues) == 0 {
		return []string{ExcellentRecommendation}
	}
	recs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		recs = append(recs, issue.Message)
	}
	return recs
}
