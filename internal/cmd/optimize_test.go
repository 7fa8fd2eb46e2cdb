package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm/codegauge/internal/assist"
)

// scriptedFragments is what the scripted provider replays for every request
var scriptedFragments []string

type scriptedClient struct{}

func (scriptedClient) Stream(ctx context.Context, req assist.Request, onFragment func(string)) error {
	for _, f := range scriptedFragments {
		onFragment(f)
	}
	return nil
}

func (scriptedClient) Complete(ctx context.Context, req assist.Request) (string, error) {
	return strings.Join(scriptedFragments, ""), nil
}

func (scriptedClient) Provider() string { return "scripted" }
func (scriptedClient) Model() string    { return "scripted-1" }

func init() {
	assist.RegisterProvider("scripted", func(cfg assist.Config) (assist.Client, error) {
		return scriptedClient{}, nil
	})
}

func useScripted(t *testing.T, fragments ...string) {
	t.Helper()
	t.Setenv("CODEGAUGE_ASSIST_PROVIDER", "scripted")
	scriptedFragments = fragments
	t.Cleanup(func() { scriptedFragments = nil })
}

func TestAnalyzeIgnoresAssistConfig(t *testing.T) {
	t.Setenv("CODEGAUGE_ASSIST_PROVIDER", "gateway")

	out, _, err := run(t, "int x = 1;\n", "analyze", "-l", "c", "-f", "json")
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	if !strings.Contains(out, `"linesOfCode": 1`) {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, _, err := run(t, "", "languages"); err != nil {
		t.Errorf("languages error = %v", err)
	}
}

func TestOptimizeRejectsAssistConfig(t *testing.T) {
	t.Setenv("CODEGAUGE_ASSIST_PROVIDER", "gateway")

	_, _, err := run(t, "int x = 1;\n", "optimize", "-l", "c")
	if err == nil || !strings.Contains(err.Error(), "gateway_url is required") {
		t.Errorf("optimize error = %v, want gateway_url error", err)
	}
}

func TestOptimizeStreamsFragments(t *testing.T) {
	useScripted(t, "```c\n", "int x = 1;\n", "```")

	out, errOut, err := run(t, "int x=1;\n", "optimize", "-l", "c")
	if err != nil {
		t.Fatalf("optimize error = %v", err)
	}

	if out != "```c\nint x = 1;\n```\n" {
		t.Errorf("streamed output = %q", out)
	}
	if !strings.Contains(errOut, "Quality excellent -> excellent") {
		t.Errorf("missing before/after notice:\n%s", errOut)
	}
}

func TestOptimizeStructuredPrintsExtractedCode(t *testing.T) {
	useScripted(t, "```c\n", "int x = 1;\n", "```")

	out, errOut, err := run(t, "int x=1;\n", "optimize", "-l", "c", "-f", "json")
	if err != nil {
		t.Fatalf("optimize error = %v", err)
	}
	if out != "int x = 1;\n" {
		t.Errorf("output = %q, want extracted code", out)
	}
	if strings.Contains(errOut, "Quality") {
		t.Errorf("structured mode should not print notices:\n%s", errOut)
	}
}

func TestOptimizeWrite(t *testing.T) {
	useScripted(t, "```c\n", "int x = 1;\n", "```")

	src := filepath.Join(t.TempDir(), "main.c")
	if err := os.WriteFile(src, []byte("int x=1;\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, errOut, err := run(t, "", "optimize", src, "--write")
	if err != nil {
		t.Fatalf("optimize error = %v", err)
	}

	got, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "int x = 1;\n" {
		t.Errorf("file content = %q, want %q", got, "int x = 1;\n")
	}
	if !strings.Contains(errOut, "Wrote "+src) {
		t.Errorf("missing write notice:\n%s", errOut)
	}
}

func TestOptimizeDryRun(t *testing.T) {
	useScripted(t, "int x = 1;")

	src := filepath.Join(t.TempDir(), "main.c")
	if err := os.WriteFile(src, []byte("int x=1;\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, "", "optimize", src, "--dry-run")
	if err != nil {
		t.Fatalf("optimize error = %v", err)
	}

	got, _ := os.ReadFile(src)
	if string(got) != "int x=1;\n" {
		t.Errorf("dry run modified file: %q", got)
	}
	if !strings.Contains(out, "Would write: "+src) || !strings.Contains(out, "+ int x = 1;") {
		t.Errorf("missing dry run preview:\n%s", out)
	}
}

func TestTranslateWithBackend(t *testing.T) {
	useScripted(t, "```python\n", "x = 1\n", "```")

	dest := filepath.Join(t.TempDir(), "out.py")
	out, errOut, err := run(t, "int x = 1;", "translate", "--from", "java", "--to", "python", "--out", dest)
	if err != nil {
		t.Fatalf("translate error = %v", err)
	}

	if out != "x = 1\n" {
		t.Errorf("output = %q, want %q", out, "x = 1\n")
	}
	if !strings.Contains(errOut, "Translating Java to Python...") {
		t.Errorf("missing progress message:\n%s", errOut)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if string(got) != "x = 1\n" {
		t.Errorf("file content = %q", got)
	}
}
