package reporter

import (
	"fmt"

	"github.com/pthm/codegauge/internal/language"
	"github.com/pthm/codegauge/internal/metrics"
	"github.com/pthm/codegauge/internal/ui"
)

// Reporter defines the interface for outputting analysis results
type Reporter interface {
	// Report outputs one analysis result
	Report(result *Result) error
}

// Result is a single analyzed block of code
type Result struct {
	// Source labels where the code came from (a path or "stdin")
	Source   string
	Language language.Language
	Record   *metrics.Record
}

// New returns the reporter for format
func New(format string, u *ui.UI) (Reporter, error) {
	switch format {
	case "", "terminal":
		return NewTerminalReporter(u), nil
	case "json":
		return NewJSONReporter(u.Writer), nil
	case "yaml":
		return NewYAMLReporter(u.Writer), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Output is the structured form of a Result
type Output struct {
	Source         string `json:"source" yaml:"source"`
	Language       string `json:"language" yaml:"language"`
	metrics.Record `yaml:",inline"`
}

func newOutput(result *Result) Output {
	out := Output{
		Source:   result.Source,
		Language: result.Language.String(),
	}
	if result.Record != nil {
		out.Record = *result.Record
	}
	if out.Recommendations == nil {
		out.Recommendations = []string{}
	}
	return out
}
