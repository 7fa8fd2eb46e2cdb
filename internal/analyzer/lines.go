package analyzer

import (
	"regexp"
	"strings"
	"unicode"
)

// commentPattern matches line comments and lazily matched block comments.
// A block comment spanning several lines is a single match.
var commentPattern = regexp.MustCompile(`//.*|/\*[\s\S]*?\*/|#.*`)

// isBlank reports whitespace, including the byte order mark
func isBlank(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// CountLines counts lines that are non-empty after trimming
func CountLines(code string) int {
	count := 0
	for _, line := range strings.Split(code, "\n") {
		if strings.TrimFunc(line, isBlank) != "" {
			count++
		}
	}
	return count
}

// CountCommentLines counts comment matches across the whole text
func CountCommentLines(code string) int {
	return len(commentPattern.FindAllStringIndex(code, -1))
}
