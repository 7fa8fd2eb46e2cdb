package rules

import (
	"github.com/pthm/codegauge/internal/analyzer"
)

// ComplexityRule flags code whose cyclomatic complexity exceeds MaxComplexity
type ComplexityRule struct {
	MaxComplexity int
}

func (r *ComplexityRule) Name() string {
	return "high-complexity"
}

func (r *ComplexityRule) Description() string {
	return "Checks for code with too many decision points"
}

func (r *ComplexityRule) Severity() Severity {
	return Warning
}

func (r *ComplexityRule) Penalty() int {
	return 20
}

func (r *ComplexityRule) Recommendation() string {
	return "Consider breaking down complex functions into smaller, more manageable units."
}

func (r *ComplexityRule) Breached(m *analyzer.Measurements) bool {
	limit := r.MaxComplexity
	if limit == 0 {
		limit = 10 // Default
	}
	return m.CyclomaticComplexity() > limit
}

// NestingRule flags code nested deeper than MaxDepth braces
type NestingRule struct {
	MaxDepth int
}

func (r *NestingRule) Name() string {
	return "deep-nesting"
}

func (r *NestingRule) Description() string {
	return "Checks for deeply nested blocks"
}

func (r *NestingRule) Severity() Severity {
	return Warning
}

func (r *NestingRule) Penalty() int {
	return 20
}

func (r *NestingRule) Recommendation() string {
	return "Reduce nesting depth by extracting nested logic into separate functions."
}

func (r *NestingRule) Breached(m *analyzer.Measurements) bool {
	limit := r.MaxDepth
	if limit == 0 {
		limit = 4 // Default
	}
	return m.NestingDepth > limit
}

// CommentDensityRule flags code with fewer than MinDensity percent comment lines
type CommentDensityRule struct {
	MinDensity float64
}

func (r *CommentDensityRule) Name() string {
	return "low-comment-density"
}

func (r *CommentDensityRule) Description() string {
	return "Checks for sparsely commented code"
}

func (r *CommentDensityRule) Severity() Severity {
	return Suggestion
}

func (r *CommentDensityRule) Penalty() int {
	return 15
}

func (r *CommentDensityRule) Recommendation() string {
	return "Add more meaningful comments to improve code readability and maintainability."
}

func (r *CommentDensityRule) Breached(m *analyzer.Measurements) bool {
	limit := r.MinDensity
	if limit == 0 {
		limit = 10 // Default
	}
	return m.CommentDensity() < limit
}

// LargeBlockRule flags code blocks longer than MaxLines
type LargeBlockRule struct {
	MaxLines int
}

func (r *LargeBlockRule) Name() string {
	return "large-block"
}

func (r *LargeBlockRule) Description() string {
	return "Checks for code blocks that are too long"
}

func (r *LargeBlockRule) Severity() Severity {
	return Warning
}

func (r *LargeBlockRule) Penalty() int {
	return 15
}

func (r *LargeBlockRule) Recommendation() string {
	return "Consider splitting this large code block into multiple smaller modules."
}

func (r *LargeBlockRule) Breached(m *analyzer.Measurements) bool {
	limit := r.MaxLines
	if limit == 0 {
		limit = 200 // Default
	}
	return m.LinesOfCode > limit
}

// EffortRule flags code whose Halstead effort exceeds MaxEffort
type EffortRule struct {
	MaxEffort float64
}

func (r *EffortRule) Name() string {
	return "high-effort"
}

func (r *EffortRule) Description() string {
	return "Checks for code that takes a lot of effort to understand"
}

func (r *EffortRule) Severity() Severity {
	return Suggestion
}

func (r *EffortRule) Penalty() int {
	return 10
}

func (r *EffortRule) Recommendation() string {
	return "Simplify complex logic to reduce cognitive load and improve maintainability."
}

func (r *EffortRule) Breached(m *analyzer.Measurements) bool {
	limit := r.MaxEffort
	if limit == 0 {
		limit = 10000 // Default
	}
	return m.Halstead.Effort() > limit
}
