package analyzer

import "regexp"

// decisionPattern matches branch keywords on word boundaries and
// short-circuit/ternary operators literally
var decisionPattern = regexp.MustCompile(`\b(?:if|for|while|case|catch)\b|&&|\|\||\?`)

// CountDecisionPoints counts non-overlapping decision tokens. Tokens inside
// comments and strings are counted too.
func CountDecisionPoints(code string) int {
	return len(decisionPattern.FindAllStringIndex(code, -1))
}

// MaxNesting returns the deepest brace nesting reached scanning left to right.
// Unbalanced closing braces drive the counter negative without affecting
// the recorded maximum.
func MaxNesting(code string) int {
	maxDepth, depth := 0, 0
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '{':
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
		case '}':
			depth--
		}
	}
	return maxDepth
}
