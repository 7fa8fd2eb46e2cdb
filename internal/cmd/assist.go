package cmd

import (
	"context"
	"fmt"

	"github.com/pthm/codegauge/internal/assist"
)

// assistSession creates the configured assist client and a context bounded
// by the configured request timeout
func assistSession(parent context.Context) (assist.Client, context.Context, context.CancelFunc, error) {
	if err := cfg.Assist.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid assist configuration: %w", err)
	}

	client, err := assist.NewClient(cfg.ClientConfig())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create %s client: %w", cfg.Assist.Provider, err)
	}

	timeout, err := cfg.Assist.RequestTimeout()
	if err != nil {
		return nil, nil, nil, err
	}

	ctx, cancel := context.WithCancel(parent)
	if timeout > 0 {
		cancel()
		ctx, cancel = context.WithTimeout(parent, timeout)
	}

	logger.Debug("assist client ready", "provider", client.Provider(), "model", client.Model(), "timeout", timeout)
	return client, ctx, cancel, nil
}
