package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/codegauge/internal/assist"
	"github.com/pthm/codegauge/internal/fixer"
	"github.com/pthm/codegauge/internal/metrics"
	"github.com/pthm/codegauge/internal/ui"
)

var (
	optimizeLanguage string
	optimizeCopy     bool
	optimizeWrite    bool
	dryRun           bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [file|-]",
	Short: "Rewrite code with AI guided by its metrics",
	Long: `Analyze code, then ask the configured AI backend for an optimized
version that addresses the recommendations. The rewrite is streamed as it
is generated.

Examples:
  codegauge optimize src/Main.java
  codegauge optimize --copy util.c
  codegauge optimize --write --dry-run main.py`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeLanguage, "language", "l", "", "Source language (java, c, python, cpp); detected when omitted")
	optimizeCmd.Flags().BoolVar(&optimizeCopy, "copy", false, "Copy the optimized code to the clipboard")
	optimizeCmd.Flags().BoolVar(&optimizeWrite, "write", false, "Write the optimized code back to the file")
	optimizeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the write without changing the file")
	RootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	code, source, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	if (optimizeWrite || dryRun) && source == stdinSource {
		return fmt.Errorf("--write needs a file argument")
	}

	u := GetUI()

	progress := u.StartProgress()
	defer func() {
		if progress != nil {
			progress.Done(nil)
		}
	}()

	// Stage 1: Analyze
	lang := resolveLanguage(optimizeLanguage, source, code)
	rec := metrics.Analyze(code, lang.String())

	client, ctx, cancel, err := assistSession(cmd.Context())
	if err != nil {
		return err
	}
	defer cancel()

	optimizer, err := assist.NewOptimizer(client)
	if err != nil {
		return err
	}

	// Stage 2: Generate. Fragments go straight to the writer unless the
	// progress display owns the terminal.
	progress.SetStage(ui.StageWaiting)
	progress.SetOperation(fmt.Sprintf("Asking %s (%s)...", client.Provider(), client.Model()))
	progress.Expect(len(code))

	streaming := progress == nil && !u.IsStructured()
	onFragment := func(fragment string) {
		if streaming {
			fmt.Fprint(u.Writer, fragment)
		} else {
			progress.Fragment(fragment)
		}
	}

	optimized, err := optimizer.Optimize(ctx, code, lang.String(), rec, onFragment)

	if progress != nil {
		progress.Done(err)
		progress = nil // Prevent double-done in defer
	}
	if streaming {
		fmt.Fprintln(u.Writer)
	}
	if err != nil {
		if optimized != "" && !streaming {
			fmt.Fprintln(u.Writer, optimized)
		}
		return err
	}

	// Stage 3: Apply
	if !streaming {
		fmt.Fprintln(u.Writer, strings.TrimRight(optimized, "\n"))
	}

	after := metrics.Analyze(optimized, lang.String())
	logger.Info("optimization complete", "before", rec.QualityRating, "after", after.QualityRating)
	if !u.IsStructured() {
		u.Success(fmt.Sprintf("Quality %s -> %s", rec.QualityRating, after.QualityRating))
	}

	if optimizeCopy {
		u.CopyAndNotify(optimized, "Optimized code")
	}
	if optimizeWrite || dryRun {
		return fixer.New(fixer.Options{DryRun: dryRun}, u).Apply(source, optimized)
	}

	return nil
}
