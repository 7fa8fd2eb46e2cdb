package language

import "regexp"

// Profile is the immutable set of operator patterns for one language.
// Patterns are only used to count occurrences, never to tokenize.
type Profile struct {
	Language    Language
	Punctuation *regexp.Regexp
	Keywords    *regexp.Regexp
}

// Patterns returns the operator patterns in evaluation order
func (p *Profile) Patterns() []*regexp.Regexp {
	return []*regexp.Regexp{p.Punctuation, p.Keywords}
}

var (
	punctuation      = regexp.MustCompile(`[+\-*/%=!<>&|^~]+`)
	punctuationColon = regexp.MustCompile(`[+\-*/%=!<>&|^~:]+`)

	javaProfile = &Profile{
		Language:    Java,
		Punctuation: punctuation,
		Keywords:    regexp.MustCompile(`\b(?:if|else|for|while|switch|case|return|throw|new)\b`),
	}
	cProfile = &Profile{
		Language:    C,
		Punctuation: punctuation,
		Keywords:    regexp.MustCompile(`\b(?:if|else|for|while|switch|case|return|goto)\b`),
	}
	pythonProfile = &Profile{
		Language:    Python,
		Punctuation: punctuation,
		Keywords:    regexp.MustCompile(`\b(?:if|elif|else|for|while|return|yield|import|from|in|is|and|or|not)\b`),
	}
	cppProfile = &Profile{
		Language:    Cpp,
		Punctuation: punctuationColon,
		Keywords:    regexp.MustCompile(`\b(?:if|else|for|while|switch|case|return|throw|new|delete)\b`),
	}
)

// ProfileFor returns the pattern table of a language. Values outside the
// supported set get the Default table.
func ProfileFor(l Language) *Profile {
	switch l {
	case Java:
		return javaProfile
	case C:
		return cProfile
	case Python:
		return pythonProfile
	case Cpp:
		return cppProfile
	default:
		return javaProfile
	}
}

// Lookup resolves a raw tag to its profile, falling back to Default
func Lookup(tag string) *Profile {
	lang, _ := Parse(tag)
	return ProfileFor(lang)
}
