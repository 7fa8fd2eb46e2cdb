package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/codegauge/internal/language"
)

const stdinSource = "stdin"

var errNoCode = errors.New("no code to analyze")

// readInput reads the code named by args: a file path, or stdin for "-" or
// no argument. Blank input is rejected.
func readInput(cmd *cobra.Command, args []string) (code, source string, err error) {
	var data []byte
	if len(args) == 0 || args[0] == "-" {
		source = stdinSource
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
	} else {
		source = args[0]
		data, err = os.ReadFile(source)
		if err != nil {
			return "", "", fmt.Errorf("failed to read %s: %w", source, err)
		}
	}

	code = string(data)
	if strings.TrimSpace(code) == "" {
		return "", source, errNoCode
	}
	return code, source, nil
}

// resolveLanguage picks the language for code from an explicit tag, falling
// back to detection from the source name and content. Unknown tags are
// measured as java.
func resolveLanguage(tag, source, code string) language.Language {
	if tag != "" {
		lang, ok := language.Parse(tag)
		if !ok {
			logger.Warn("unsupported language, measuring as java", "language", tag)
		}
		return lang
	}

	path := source
	if source == stdinSource {
		path = ""
	}
	lang, ok := language.Detect(path, []byte(code))
	if !ok {
		logger.Debug("could not detect language, using default", "default", lang)
	} else {
		logger.Debug("detected language", "language", lang)
	}
	return lang
}
