package reporter

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pthm/codegauge/internal/rules"
	"github.com/pthm/codegauge/internal/ui"
)

const barWidth = 30

// TerminalReporter outputs results to the terminal with colors
type TerminalReporter struct {
	w      io.Writer
	styles *ui.Styles
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(u *ui.UI) *TerminalReporter {
	return &TerminalReporter{w: u.Writer, styles: u.Styles}
}

type metricRow struct {
	label   string
	value   float64
	display string
}

// Report outputs the result to the terminal
func (r *TerminalReporter) Report(result *Result) error {
	rec := result.Record
	if rec == nil {
		return fmt.Errorf("no metrics to report")
	}
	s := r.styles

	// Header
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%s %s\n",
		s.Header.Render(filepath.Base(result.Source)),
		s.Subheader.Render("("+result.Language.DisplayName()+")"))
	if result.Source != filepath.Base(result.Source) {
		fmt.Fprintf(r.w, "  %s\n", s.Path.Render(result.Source))
	}
	fmt.Fprintf(r.w, "  Quality %s\n\n", s.Rating(rec.QualityRating))

	// Metric bars share one axis, scaled to the largest value
	rows := []metricRow{
		{"Lines of code", float64(rec.LinesOfCode), fmt.Sprintf("%d", rec.LinesOfCode)},
		{"Complexity", float64(rec.CyclomaticComplexity), fmt.Sprintf("%d", rec.CyclomaticComplexity)},
		{"Nesting depth", float64(rec.NestingDepth), fmt.Sprintf("%d", rec.NestingDepth)},
		{"Comment density", rec.CommentDensity, fmt.Sprintf("%.2f%%", rec.CommentDensity)},
	}
	var peak float64
	for _, row := range rows {
		peak = max(peak, row.value)
	}
	for _, row := range rows {
		bar := s.Bar(row.value, peak, barWidth)
		if bar != "" {
			bar += " "
		}
		fmt.Fprintf(r.w, "  %s%s%s\n", s.Label.Render(row.label), bar, row.display)
	}

	// Halstead
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "  %s\n", s.Header.Render("Halstead"))
	fmt.Fprintf(r.w, "    %s%.0f\n", s.Label.Render("Volume"), rec.Halstead.Volume)
	fmt.Fprintf(r.w, "    %s%.2f\n", s.Label.Render("Difficulty"), rec.Halstead.Difficulty)
	fmt.Fprintf(r.w, "    %s%.0f\n", s.Label.Render("Effort"), rec.Halstead.Effort)

	r.printRecommendations(rec.Recommendations)
	return nil
}

func (r *TerminalReporter) printRecommendations(recs []string) {
	s := r.styles

	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "  %s\n", s.Header.Render("Recommendations"))
	for _, rec := range recs {
		style, icon := s.ForSeverity(rules.Suggestion)
		if rec == rules.ExcellentRecommendation {
			style, icon = s.Success, s.IconSuccess
		}
		fmt.Fprintf(r.w, "    %s %s\n", style.Render(icon), rec)
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Separator.Render(strings.Repeat("─", 37)))
}
