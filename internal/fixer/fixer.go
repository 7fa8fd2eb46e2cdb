package fixer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pthm/codegauge/internal/ui"
)

// previewLines bounds the dry-run preview
const previewLines = 10

// Options configures the fixer behavior
type Options struct {
	DryRun bool
}

// Fixer writes generated code back to source files
type Fixer struct {
	opts Options
	ui   *ui.UI
}

// New creates a new Fixer
func New(opts Options, u *ui.UI) *Fixer {
	return &Fixer{opts: opts, ui: u}
}

// Apply replaces the contents of path with content. Existing file
// permissions are preserved; new files are created 0644.
func (f *Fixer) Apply(path, content string) error {
	if path == "" || path == "-" {
		return fmt.Errorf("no file to write to")
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("refusing to write empty content to %s", path)
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	mode := fs.FileMode(0644)
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		mode = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if f.opts.DryRun {
		f.printDryRun(path, content)
		return nil
	}

	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	f.ui.Success(fmt.Sprintf("Wrote %s", path))
	return nil
}

func (f *Fixer) printDryRun(path, content string) {
	w := f.ui.Writer
	fmt.Fprintln(w, f.ui.Styles.Suggestion.Render(fmt.Sprintf("Would write: %s", path)))

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	shown := lines
	if len(shown) > previewLines {
		shown = shown[:previewLines]
	}
	for _, line := range shown {
		fmt.Fprintln(w, f.ui.Styles.Success.Render("  + "+line))
	}
	if rest := len(lines) - len(shown); rest > 0 {
		fmt.Fprintf(w, "  ... %d more lines\n", rest)
	}
	fmt.Fprintln(w)
}
