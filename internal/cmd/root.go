package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pthm/codegauge/internal/config"
	"github.com/pthm/codegauge/internal/logging"
	"github.com/pthm/codegauge/internal/ui"
)

var (
	// Global flags
	verbose    bool
	format     string
	configPath string

	cfg    *config.Config
	logger *log.Logger
	appUI  *ui.UI
)

// RootCmd is the codegauge command tree
var RootCmd = &cobra.Command{
	Use:   "codegauge",
	Short: "Code quality metrics with AI-assisted optimization",
	Long: `codegauge measures a block of Java, C, Python or C++ source code and
reports lines of code, cyclomatic complexity, Halstead measures, nesting
depth and comment density, together with a quality rating and concrete
recommendations.

The optimize and translate commands hand the code to an AI backend to
rewrite it or to port it to another language.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json, yaml)")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default .codegauge.yaml in the working or home directory)")
}

// setup loads configuration and builds the shared logger and UI
func setup(cmd *cobra.Command, args []string) error {
	logger = logging.New(cmd.ErrOrStderr(), verbose)

	c, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// An explicit flag wins over the configured default
	if cmd.Flags().Changed("format") {
		c.Output.Format = format
	} else {
		format = c.Output.Format
	}

	// Assist settings are checked by the commands that use them
	if err := c.Output.Validate(); err != nil {
		return err
	}
	cfg = c

	appUI = ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), format)
	logger.Debug("configuration loaded", "provider", c.Assist.Provider, "format", format)
	return nil
}

// GetUI returns the UI configured for the running command
func GetUI() *ui.UI {
	if appUI == nil {
		appUI = ui.New(os.Stdout, os.Stderr, format)
	}
	return appUI
}
