package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/pthm/codegauge/internal/language"
	"github.com/pthm/codegauge/internal/prompt"
)

// codeTranslator is implemented by backends with a native translation endpoint
type codeTranslator interface {
	TranslateCode(ctx context.Context, code, from, to string) (string, error)
}

// Translator converts code between supported languages
type Translator struct {
	client Client
	prompt *prompt.Prompt
}

// NewTranslator creates a Translator backed by client
func NewTranslator(client Client) (*Translator, error) {
	p, err := prompt.Load("translate")
	if err != nil {
		return nil, err
	}
	return &Translator{client: client, prompt: p}, nil
}

// Translate returns code translated from one supported language to another
func (t *Translator) Translate(ctx context.Context, code, from, to string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", ErrEmptyCode
	}
	if _, ok := language.Parse(from); !ok {
		return "", fmt.Errorf("unsupported source language: %q", from)
	}
	if _, ok := language.Parse(to); !ok {
		return "", fmt.Errorf("unsupported target language: %q", to)
	}
	if from == to {
		return "", ErrSameLanguage
	}

	if native, ok := t.client.(codeTranslator); ok {
		out, err := native.TranslateCode(ctx, code, from, to)
		if err != nil {
			return "", fmt.Errorf("translation failed: %w", err)
		}
		return out, nil
	}

	text, err := t.prompt.Render(map[string]string{"Code": code, "From": from, "To": to})
	if err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}

	out, err := t.client.Complete(ctx, Request{System: t.prompt.System, Prompt: text})
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}

	code = ExtractCode(out)
	if code == "" {
		return "", ErrEmptyResponse
	}
	return code, nil
}
