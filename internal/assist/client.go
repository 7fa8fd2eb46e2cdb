// Package assist talks to the AI backends that rewrite and translate code.
// The metrics engine never depends on it; commands feed it analysis
// results as prompt context.
package assist

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrEmptyCode is returned when there is no code to send
	ErrEmptyCode = errors.New("no code provided")

	// ErrSameLanguage is returned when source and target languages match
	ErrSameLanguage = errors.New("source and target languages must differ")

	// ErrEmptyResponse is returned when the backend produced no text
	ErrEmptyResponse = errors.New("empty response from AI backend")
)

// Request is a single prompt sent to a backend
type Request struct {
	System string
	Prompt string
}

// Client is the interface implemented by every AI backend
type Client interface {
	// Stream sends the request and calls onFragment for every text fragment,
	// in arrival order. It returns when the response ends or ctx is done.
	Stream(ctx context.Context, req Request, onFragment func(string)) error

	// Complete sends the request and returns the whole response text
	Complete(ctx context.Context, req Request) (string, error)

	// Provider returns the backend name (e.g., "anthropic")
	Provider() string

	// Model returns the model in use, or "" if the backend picks one
	Model() string
}

// Config holds everything a provider factory may need
type Config struct {
	Provider  string
	Model     string
	APIKey    string
	BaseURL   string
	MaxTokens int
}

// ProviderFactory creates a Client from configuration
type ProviderFactory func(cfg Config) (Client, error)

var (
	registry   = make(map[string]ProviderFactory)
	registryMu sync.RWMutex
)

// RegisterProvider registers a client factory for a provider.
// Provider implementations call it from init().
func RegisterProvider(name string, factory ProviderFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// NewClient creates a client for cfg.Provider
func NewClient(cfg Config) (Client, error) {
	if cfg.Provider == "" {
		return nil, fmt.Errorf("provider is required")
	}

	registryMu.RLock()
	factory, ok := registry[cfg.Provider]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown provider: %s (available: %v)", cfg.Provider, Providers())
	}

	return factory(cfg)
}

// Providers returns the registered provider names, sorted
func Providers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	providers := make([]string, 0, len(registry))
	for p := range registry {
		providers = append(providers, p)
	}
	sort.Strings(providers)
	return providers
}

// collect drains a Stream into a single string
func collect(ctx context.Context, c Client, req Request) (string, error) {
	var buf Buffer
	if err := c.Stream(ctx, req, buf.Append); err != nil {
		return "", err
	}
	if buf.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return buf.String(), nil
}
