package assist

import (
	"context"
	"errors"
	"fmt"

	claudecode "github.com/severity1/claude-agent-sdk-go"
)

func init() {
	RegisterProvider("claude-code", newClaudeCodeClient)
}

// claudeCodeClient drives a locally installed Claude Code CLI
type claudeCodeClient struct {
	model string
}

func newClaudeCodeClient(cfg Config) (Client, error) {
	model := cfg.Model
	if model == "" {
		model = "sonnet"
	}
	return &claudeCodeClient{model: model}, nil
}

// Stream emits every assistant text block as one fragment
func (c *claudeCodeClient) Stream(ctx context.Context, req Request, onFragment func(string)) error {
	prompt := req.Prompt
	if req.System != "" {
		prompt = req.System + "\n\n" + req.Prompt
	}

	iterator, err := claudecode.Query(ctx, prompt,
		claudecode.WithModel(c.model),
		claudecode.WithMaxTurns(1),
	)
	if err != nil {
		if claudecode.IsCLINotFoundError(err) {
			return fmt.Errorf("claude code CLI not available: %w", err)
		}
		return fmt.Errorf("claude code error: %w", err)
	}
	defer iterator.Close()

	for {
		message, err := iterator.Next(ctx)
		if err != nil {
			if errors.Is(err, claudecode.ErrNoMoreMessages) {
				return nil
			}
			return fmt.Errorf("error reading claude response: %w", err)
		}

		assistantMsg, ok := message.(*claudecode.AssistantMessage)
		if !ok {
			continue
		}
		for _, block := range assistantMsg.Content {
			if textBlock, ok := block.(*claudecode.TextBlock); ok {
				onFragment(textBlock.Text)
			}
		}
	}
}

func (c *claudeCodeClient) Complete(ctx context.Context, req Request) (string, error) {
	return collect(ctx, c, req)
}

func (c *claudeCodeClient) Provider() string {
	return "claude-code"
}

func (c *claudeCodeClient) Model() string {
	return c.model
}
