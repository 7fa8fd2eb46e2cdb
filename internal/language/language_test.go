package language

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		tag    string
		want   Language
		wantOK bool
	}{
		{"java", Java, true},
		{"c", C, true},
		{"python", Python, true},
		{"cpp", Cpp, true},
		{"rust", Java, false},
		{"", Java, false},
		{"Java", Java, false}, // case-sensitive
		{"CPP", Java, false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.tag)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tt.tag, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestProfileForEverySupportedLanguage(t *testing.T) {
	for _, l := range All() {
		p := ProfileFor(l)
		if p == nil {
			t.Fatalf("ProfileFor(%q) = nil", l)
		}
		if p.Language != l {
			t.Errorf("ProfileFor(%q).Language = %q", l, p.Language)
		}
		if len(p.Patterns()) != 2 {
			t.Errorf("ProfileFor(%q) has %d patterns, want 2", l, len(p.Patterns()))
		}
	}
}

func TestLookupFallsBackToJava(t *testing.T) {
	if Lookup("rust") != ProfileFor(Java) {
		t.Error("Lookup(rust) should return the java profile")
	}
	if Lookup("python") != ProfileFor(Python) {
		t.Error("Lookup(python) should return the python profile")
	}
}

func TestProfileKeywords(t *testing.T) {
	tests := []struct {
		lang    Language
		keyword string
		want    bool
	}{
		{Python, "elif", true},
		{Python, "yield", true},
		{Python, "and", true},
		{Java, "elif", false},
		{C, "goto", true},
		{Java, "goto", false},
		{Cpp, "delete", true},
		{Java, "delete", false},
		{Java, "throw", true},
		{C, "throw", false},
	}

	for _, tt := range tests {
		got := ProfileFor(tt.lang).Keywords.MatchString(tt.keyword)
		if got != tt.want {
			t.Errorf("%s keywords match %q = %v, want %v", tt.lang, tt.keyword, got, tt.want)
		}
	}
}

func TestPunctuationColonOnlyForCpp(t *testing.T) {
	for _, l := range All() {
		got := ProfileFor(l).Punctuation.MatchString("::")
		want := l == Cpp
		if got != want {
			t.Errorf("%s punctuation matches \"::\" = %v, want %v", l, got, want)
		}
	}
}

func TestFromExtension(t *testing.T) {
	tests := []struct {
		path   string
		want   Language
		wantOK bool
	}{
		{"/src/Main.java", Java, true},
		{"main.c", C, true},
		{"lib.H", C, true},
		{"script.py", Python, true},
		{"engine.cpp", Cpp, true},
		{"engine.hpp", Cpp, true},
		{"lib.rs", Java, false},
		{"Makefile", Java, false},
	}

	for _, tt := range tests {
		got, ok := FromExtension(tt.path)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FromExtension(%q) = (%q, %v), want (%q, %v)", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    Language
		wantOK  bool
	}{
		{
			name:    "python script",
			path:    "tool.py",
			content: "def main():\n    print('hi')\n",
			want:    Python,
			wantOK:  true,
		},
		{
			name:    "java class",
			path:    "Main.java",
			content: "public class Main {}\n",
			want:    Java,
			wantOK:  true,
		},
		{
			name:    "cpp source",
			path:    "main.cpp",
			content: "#include <iostream>\nint main() { std::cout << 1; }\n",
			want:    Cpp,
			wantOK:  true,
		},
		{
			name:    "unsupported language",
			path:    "main.rs",
			content: "fn main() {}\n",
			want:    Java,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Detect(tt.path, []byte(tt.content))
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Detect(%q) = (%q, %v), want (%q, %v)", tt.path, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestProfileForUnsupportedLanguage(t *testing.T) {
	if got := ProfileFor(Language("rust")); got != ProfileFor(Default) {
		t.Errorf("ProfileFor(rust) = %v, want the %s profile", got.Language, Default)
	}
}
