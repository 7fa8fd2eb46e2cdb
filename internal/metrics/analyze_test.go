package metrics

import (
	"math"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/pthm/codegauge/internal/language"
	"github.com/pthm/codegauge/internal/rules"
)

var (
	recComplexity = (&rules.ComplexityRule{}).Recommendation()
	recNesting    = (&rules.NestingRule{}).Recommendation()
	recComments   = (&rules.CommentDensityRule{}).Recommendation()
	recLarge      = (&rules.LargeBlockRule{}).Recommendation()
	recEffort     = (&rules.EffortRule{}).Recommendation()
)

func TestAnalyzeEmpty(t *testing.T) {
	r := Analyze("", "java")

	if r.LinesOfCode != 0 {
		t.Errorf("LinesOfCode = %d, want 0", r.LinesOfCode)
	}
	if r.CommentDensity != 0 {
		t.Errorf("CommentDensity = %v, want 0", r.CommentDensity)
	}
	if r.CyclomaticComplexity != 1 {
		t.Errorf("CyclomaticComplexity = %d, want 1", r.CyclomaticComplexity)
	}
	if r.NestingDepth != 0 {
		t.Errorf("NestingDepth = %d, want 0", r.NestingDepth)
	}
	if r.Halstead != (HalsteadMetrics{}) {
		t.Errorf("Halstead = %+v, want zero", r.Halstead)
	}
	if r.QualityRating != rules.Excellent {
		t.Errorf("QualityRating = %q, want %q", r.QualityRating, rules.Excellent)
	}
	// Zero density is below the comment threshold even without code
	if !reflect.DeepEqual(r.Recommendations, []string{recComments}) {
		t.Errorf("Recommendations = %v, want [%q]", r.Recommendations, recComments)
	}
}

func TestAnalyzeDeepNesting(t *testing.T) {
	r := Analyze("if(a){if(b){if(c){if(d){if(e){}}}}}", "c")

	if r.NestingDepth != 5 {
		t.Errorf("NestingDepth = %d, want 5", r.NestingDepth)
	}
	if r.CyclomaticComplexity != 6 {
		t.Errorf("CyclomaticComplexity = %d, want 6", r.CyclomaticComplexity)
	}

	want := HalsteadMetrics{Volume: 42, Difficulty: 0.83, Effort: 35}
	if r.Halstead != want {
		t.Errorf("Halstead = %+v, want %+v", r.Halstead, want)
	}

	if !reflect.DeepEqual(r.Recommendations, []string{recNesting, recComments}) {
		t.Errorf("Recommendations = %v", r.Recommendations)
	}
	if r.QualityRating != rules.Good {
		t.Errorf("QualityRating = %q, want %q", r.QualityRating, rules.Good)
	}
}

func TestAnalyzeLargeUncommentedBlock(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 250; i++ {
		sb.WriteString("x = 1;\n\n   \n")
	}

	r := Analyze(sb.String(), "java")

	if r.LinesOfCode != 250 {
		t.Errorf("LinesOfCode = %d, want 250", r.LinesOfCode)
	}
	if r.CyclomaticComplexity != 1 {
		t.Errorf("CyclomaticComplexity = %d, want 1", r.CyclomaticComplexity)
	}

	// 250 identical assignments also cross the effort threshold
	want := []string{recComments, recLarge, recEffort}
	if !reflect.DeepEqual(r.Recommendations, want) {
		t.Errorf("Recommendations = %v, want %v", r.Recommendations, want)
	}

	// 100 - 15 - 15 - 10
	if r.QualityRating != rules.Good {
		t.Errorf("QualityRating = %q, want %q", r.QualityRating, rules.Good)
	}
}

func TestAnalyzeExcellent(t *testing.T) {
	code := "// add returns the sum\nint add(int a, int b) {\n  return a + b;\n}\n"
	r := Analyze(code, "c")

	if r.QualityRating != rules.Excellent {
		t.Errorf("QualityRating = %q, want %q", r.QualityRating, rules.Excellent)
	}
	if !reflect.DeepEqual(r.Recommendations, []string{rules.ExcellentRecommendation}) {
		t.Errorf("Recommendations = %v", r.Recommendations)
	}
	if r.CommentDensity != 25 {
		t.Errorf("CommentDensity = %v, want 25", r.CommentDensity)
	}
}

func TestAnalyzeEverythingWrong(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("{", 6))
	sb.WriteString("\n")
	for i := 0; i < 210; i++ {
		sb.WriteString("if (a && b || c) { x = y ? 1 : 2; }\n")
	}
	sb.WriteString(strings.Repeat("}", 6))

	r := Analyze(sb.String(), "java")

	want := []string{recComplexity, recNesting, recComments, recLarge, recEffort}
	if !reflect.DeepEqual(r.Recommendations, want) {
		t.Errorf("Recommendations = %v, want %v", r.Recommendations, want)
	}
	if r.QualityRating != rules.Poor {
		t.Errorf("QualityRating = %q, want %q", r.QualityRating, rules.Poor)
	}
}

func TestAnalyzeRounding(t *testing.T) {
	r := Analyze("x = 1;", "java")

	// volume 3*log2(3) = 4.75, difficulty 0.5, effort 2.38
	want := HalsteadMetrics{Volume: 5, Difficulty: 0.5, Effort: 2}
	if r.Halstead != want {
		t.Errorf("Halstead = %+v, want %+v", r.Halstead, want)
	}

	r = Analyze("// c\nx = 1;\ny = 2;", "java")
	if r.CommentDensity != 33.33 {
		t.Errorf("CommentDensity = %v, want 33.33", r.CommentDensity)
	}
}

func TestAnalyzeCommentDensityCappedForReporting(t *testing.T) {
	r := Analyze("x = 1; /* a */ /* b */", "java")
	if r.CommentDensity != 100 {
		t.Errorf("CommentDensity = %v, want 100", r.CommentDensity)
	}
	if r.RawCommentDensity != 200 {
		t.Errorf("RawCommentDensity = %v, want 200", r.RawCommentDensity)
	}
}

func TestAnalyzeBlankLineCharacters(t *testing.T) {
	r := Analyze("# comment\r\nx = 1\r\n\u00a0\r\n\ufeff\r\n", "python")
	if r.LinesOfCode != 2 {
		t.Errorf("LinesOfCode = %d, want 2", r.LinesOfCode)
	}
	if r.CommentDensity != 50 {
		t.Errorf("CommentDensity = %v, want 50", r.CommentDensity)
	}
}

func TestAnalyzeUnknownLanguageMatchesJava(t *testing.T) {
	code := `public class Main {
    // entry
    public static void main(String[] args) {
        for (int i = 0; i < 10; i++) {
            if (i % 2 == 0 && i > 2) { System.out.println("even " + i); }
        }
        throw new RuntimeException("done");
    }
}`

	for _, tag := range []string{"rust", "", "Java", "go"} {
		if got, want := Analyze(code, tag), Analyze(code, "java"); !reflect.DeepEqual(got, want) {
			t.Errorf("Analyze(code, %q) = %+v, want java result %+v", tag, got, want)
		}
	}
}

func TestAnalyzeLanguageChangesOperators(t *testing.T) {
	code := "if a and not b:\n    return x\n"
	py := Analyze(code, "python")
	java := Analyze(code, "java")

	if py.Halstead.Volume <= java.Halstead.Volume {
		t.Errorf("python volume %v should exceed java volume %v", py.Halstead.Volume, java.Halstead.Volume)
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	code := "int f(int x) {\n  /* doc */\n  while (x > 0) { x--; }\n  return x;\n}"

	first := Analyze(code, "cpp")
	second := Analyze(code, "cpp")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Analyze() not idempotent: %+v vs %+v", first, second)
	}
}

func TestAnalyzeConcurrent(t *testing.T) {
	code := "for (i = 0; i < n; i++) { if (a[i] > m) { m = a[i]; } }"
	want := Analyze(code, "c")

	var wg sync.WaitGroup
	errs := make(chan *Record, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Analyze(code, "c"); !reflect.DeepEqual(got, want) {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("concurrent Analyze() = %+v, want %+v", got, want)
	}
}

func TestAnalyzeInvariants(t *testing.T) {
	inputs := []string{
		"",
		"   \n\n",
		"!!!",
		"\"\"''",
		"}}}}",
		"/* unterminated",
		"# just a comment",
		"@@@ ### $$$",
		strings.Repeat("a = b + c;\n", 50),
	}

	for _, in := range inputs {
		for _, lang := range []string{"java", "c", "python", "cpp", "unknown"} {
			r := Analyze(in, lang)

			if r.CyclomaticComplexity < 1 {
				t.Errorf("Analyze(%q, %s).CyclomaticComplexity = %d", in, lang, r.CyclomaticComplexity)
			}
			for name, v := range map[string]float64{
				"volume":     r.Halstead.Volume,
				"difficulty": r.Halstead.Difficulty,
				"effort":     r.Halstead.Effort,
			} {
				if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
					t.Errorf("Analyze(%q, %s) %s = %v", in, lang, name, v)
				}
			}
			if r.CommentDensity < 0 || r.CommentDensity > 100 {
				t.Errorf("Analyze(%q, %s).CommentDensity = %v", in, lang, r.CommentDensity)
			}
			if len(r.Recommendations) == 0 {
				t.Errorf("Analyze(%q, %s).Recommendations is empty", in, lang)
			}
		}
	}
}

func TestAnalyzeWithUnsupportedProfile(t *testing.T) {
	code := "if (a && b) { x = 1; }"
	got := AnalyzeWith(code, language.ProfileFor(language.Language("rust")), rules.DefaultRegistry())
	if want := Analyze(code, "java"); !reflect.DeepEqual(got, want) {
		t.Errorf("AnalyzeWith(rust) = %+v, want %+v", got, want)
	}
}
