package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pthm/codegauge/internal/metrics"
	"github.com/pthm/codegauge/internal/reporter"
)

var analyzeLanguage string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file|-]",
	Short: "Measure code quality metrics",
	Long: `Measure the quality metrics of a block of source code read from a file
or stdin.

Examples:
  codegauge analyze src/Main.java
  cat util.c | codegauge analyze -l c
  codegauge analyze --format json main.py > metrics.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeLanguage, "language", "l", "", "Source language (java, c, python, cpp); detected when omitted")
	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	code, source, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	lang := resolveLanguage(analyzeLanguage, source, code)
	rec := metrics.Analyze(code, lang.String())
	logger.Debug("analysis complete", "source", source, "rating", rec.QualityRating)

	rep, err := reporter.New(format, GetUI())
	if err != nil {
		return err
	}

	return rep.Report(&reporter.Result{Source: source, Language: lang, Record: rec})
}
