package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/pthm/codegauge/internal/metrics"
	"github.com/pthm/codegauge/internal/prompt"
)

// Optimizer asks a backend for a rewrite of analyzed code, using the
// analysis as prompt context
type Optimizer struct {
	client Client
	prompt *prompt.Prompt
}

// NewOptimizer creates an Optimizer backed by client
func NewOptimizer(client Client) (*Optimizer, error) {
	p, err := prompt.Load("optimize")
	if err != nil {
		return nil, err
	}
	return &Optimizer{client: client, prompt: p}, nil
}

type optimizeData struct {
	Language string
	Code     string
	Metrics  *metrics.Record
}

// Optimize streams the rewrite of code, calling onFragment (if not nil) for
// every fragment as it arrives. It returns the accumulated response with
// any markdown fence removed. On error the partial text is still returned.
func (o *Optimizer) Optimize(ctx context.Context, code, lang string, rec *metrics.Record, onFragment func(string)) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", ErrEmptyCode
	}

	text, err := o.prompt.Render(optimizeData{Language: lang, Code: code, Metrics: rec})
	if err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}

	var buf Buffer
	err = o.client.Stream(ctx, Request{System: o.prompt.System, Prompt: text}, func(fragment string) {
		buf.Append(fragment)
		if onFragment != nil && fragment != "" {
			onFragment(fragment)
		}
	})
	if err != nil {
		return ExtractCode(buf.String()), fmt.Errorf("optimization failed: %w", err)
	}
	if buf.Len() == 0 {
		return "", ErrEmptyResponse
	}

	return ExtractCode(buf.String()), nil
}
