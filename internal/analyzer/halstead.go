package analyzer

import (
	"math"
	"regexp"

	"github.com/pthm/codegauge/internal/language"
)

var (
	operandPattern = regexp.MustCompile(`\b[a-zA-Z_]\w*\b|\b\d+\.?\d*\b|"[^"]*"|'[^']*'`)

	// Distinct counts use fixed patterns independent of the language
	// profile. Distinct operators therefore undercount for languages with a
	// larger keyword vocabulary, and distinct operands ignore string literals.
	uniqueOperatorPattern = regexp.MustCompile(`[+\-*/%=!<>&|^~]+|\b(?:if|else|for|while|switch|case|return)\b`)
	uniqueOperandPattern  = regexp.MustCompile(`\b[a-zA-Z_]\w*\b|\b\d+\.?\d*\b`)
)

// Halstead holds operator and operand counts and derives the software
// science measures from them
type Halstead struct {
	Operators       int // N1
	Operands        int // N2
	UniqueOperators int // n1
	UniqueOperands  int // n2
}

// MeasureHalstead counts operators with the profile's table and operands
// with the shared literal/identifier pattern
func MeasureHalstead(code string, profile *language.Profile) Halstead {
	var h Halstead
	for _, p := range profile.Patterns() {
		h.Operators += len(p.FindAllStringIndex(code, -1))
	}
	h.Operands = len(operandPattern.FindAllStringIndex(code, -1))
	h.UniqueOperators = countDistinct(uniqueOperatorPattern, code)
	h.UniqueOperands = countDistinct(uniqueOperandPattern, code)
	return h
}

func countDistinct(re *regexp.Regexp, code string) int {
	seen := make(map[string]struct{})
	for _, m := range re.FindAllString(code, -1) {
		seen[m] = struct{}{}
	}
	return len(seen)
}

// Vocabulary is n1 + n2
func (h Halstead) Vocabulary() int {
	return h.UniqueOperators + h.UniqueOperands
}

// Length is N1 + N2
func (h Halstead) Length() int {
	return h.Operators + h.Operands
}

// Volume is N * log2(n), with an empty vocabulary treated as 1
func (h Halstead) Volume() float64 {
	return float64(h.Length()) * math.Log2(float64(max(h.Vocabulary(), 1)))
}

// Difficulty is (n1 / 2) * (N2 / n2), with n2 floored to 1
func (h Halstead) Difficulty() float64 {
	return float64(h.UniqueOperators) / 2 * (float64(h.Operands) / float64(max(h.UniqueOperands, 1)))
}

// Effort is volume * difficulty
func (h Halstead) Effort() float64 {
	return h.Volume() * h.Difficulty()
}
