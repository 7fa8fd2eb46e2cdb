package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/codegauge/internal/assist"
	"github.com/pthm/codegauge/internal/fixer"
	"github.com/pthm/codegauge/internal/language"
)

var (
	translateFrom string
	translateTo   string
	translateCopy bool
	translateOut  string
)

var translateCmd = &cobra.Command{
	Use:   "translate [file|-] --to LANG",
	Short: "Translate code to another language with AI",
	Long: `Translate code between Java, C, Python and C++ using the configured AI
backend.

Examples:
  codegauge translate src/Main.java --to python
  cat util.c | codegauge translate --from c --to cpp --out util.cpp
  codegauge translate main.py --to java --copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().StringVar(&translateFrom, "from", "", "Source language; detected when omitted")
	translateCmd.Flags().StringVar(&translateTo, "to", "", "Target language (java, c, python, cpp)")
	translateCmd.Flags().BoolVar(&translateCopy, "copy", false, "Copy the translated code to the clipboard")
	translateCmd.Flags().StringVarP(&translateOut, "out", "o", "", "Write the translated code to a file")
	_ = translateCmd.MarkFlagRequired("to")
	RootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	code, source, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	if translateTo == "" {
		return fmt.Errorf("--to is required")
	}
	to, ok := language.Parse(translateTo)
	if !ok {
		return fmt.Errorf("unsupported target language %q (supported: %v)", translateTo, language.All())
	}
	if translateFrom != "" {
		if _, ok := language.Parse(translateFrom); !ok {
			return fmt.Errorf("unsupported source language %q (supported: %v)", translateFrom, language.All())
		}
	}
	from := resolveLanguage(translateFrom, source, code)
	if from == to {
		return assist.ErrSameLanguage
	}

	u := GetUI()

	client, ctx, cancel, err := assistSession(cmd.Context())
	if err != nil {
		return err
	}
	defer cancel()

	translator, err := assist.NewTranslator(client)
	if err != nil {
		return err
	}

	spinner := u.StartSimpleSpinner(u.ErrWriter,
		fmt.Sprintf("Translating %s to %s...", from.DisplayName(), to.DisplayName()))
	translated, err := translator.Translate(ctx, code, from.String(), to.String())
	spinner.Stop()
	if err != nil {
		return err
	}

	fmt.Fprintln(u.Writer, strings.TrimRight(translated, "\n"))

	if translateCopy {
		u.CopyAndNotify(translated, "Translated code")
	}
	if translateOut != "" {
		return fixer.New(fixer.Options{}, u).Apply(translateOut, translated)
	}

	return nil
}
