package language

import (
	"github.com/go-enry/go-enry/v2"
)

// enryNames maps linguist language names onto the supported set
var enryNames = map[string]Language{
	"Java":   Java,
	"C":      C,
	"Python": Python,
	"C++":    Cpp,
}

// Detect guesses the language of a file from its name and content.
// Returns Default and false when the file is not in a supported language.
func Detect(path string, content []byte) (Language, bool) {
	if name := enry.GetLanguage(path, content); name != "" {
		if l, ok := enryNames[name]; ok {
			return l, true
		}
	}

	// Linguist may classify ambiguous headers as another language
	return FromExtension(path)
}
