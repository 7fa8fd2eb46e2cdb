// Package language holds the closed set of source languages the metrics
// engine understands and the pattern tables that drive per-language counting.
package language

import (
	"path/filepath"
	"strings"
)

// Language identifies a supported source language
type Language string

const (
	Java   Language = "java"
	C      Language = "c"
	Python Language = "python"
	Cpp    Language = "cpp"
)

// Default is used for any tag outside the supported set
const Default = Java

// All returns the supported languages in display order
func All() []Language {
	return []Language{Java, C, Python, Cpp}
}

func (l Language) String() string {
	return string(l)
}

// DisplayName returns the human-readable language name
func (l Language) DisplayName() string {
	switch l {
	case Java:
		return "Java"
	case C:
		return "C"
	case Python:
		return "Python"
	case Cpp:
		return "C++"
	default:
		return string(l)
	}
}

// Parse resolves a language tag. Tags are matched case-sensitively; anything
// outside the supported set resolves to Default with ok=false.
func Parse(tag string) (lang Language, ok bool) {
	switch Language(tag) {
	case Java, C, Python, Cpp:
		return Language(tag), true
	default:
		return Default, false
	}
}

// Extensions returns the file extensions associated with a language
func Extensions(l Language) []string {
	switch l {
	case Java:
		return []string{".java"}
	case C:
		return []string{".c", ".h"}
	case Python:
		return []string{".py", ".pyw"}
	case Cpp:
		return []string{".cc", ".cpp", ".cxx", ".hh", ".hpp", ".hxx"}
	default:
		return nil
	}
}

// FromExtension returns the language owning the extension of path
func FromExtension(path string) (Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return Default, false
	}
	for _, l := range All() {
		for _, e := range Extensions(l) {
			if e == ext {
				return l, true
			}
		}
	}
	return Default, false
}
