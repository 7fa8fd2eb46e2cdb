package assist

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	gatewayChatPath      = "/chat"
	gatewayTranslatePath = "/translate-code"
	sseDataPrefix        = "data: "
	sseDone              = "[DONE]"
	maxSSELine           = 1 << 20
)

func init() {
	RegisterProvider("gateway", newGatewayClient)
}

// gatewayClient talks to an HTTP function gateway that fronts a chat model.
// The chat endpoint streams OpenAI-style server-sent events; the
// translation endpoint answers with a single JSON document.
type gatewayClient struct {
	baseURL string
	token   string
	model   string
	client  *http.Client
}

func newGatewayClient(cfg Config) (Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required for gateway provider")
	}
	return &gatewayClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.APIKey,
		model:   cfg.Model,
		client:  &http.Client{},
	}, nil
}

func (c *gatewayClient) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("gateway error (HTTP %d): %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return resp, nil
}

func (c *gatewayClient) chatBody(req Request) ([]byte, error) {
	body := []byte(`{}`)
	var err error

	i := 0
	if req.System != "" {
		if body, err = sjson.SetBytes(body, "messages.0.role", "system"); err != nil {
			return nil, err
		}
		if body, err = sjson.SetBytes(body, "messages.0.content", req.System); err != nil {
			return nil, err
		}
		i++
	}
	if body, err = sjson.SetBytes(body, fmt.Sprintf("messages.%d.role", i), "user"); err != nil {
		return nil, err
	}
	if body, err = sjson.SetBytes(body, fmt.Sprintf("messages.%d.content", i), req.Prompt); err != nil {
		return nil, err
	}
	if c.model != "" {
		if body, err = sjson.SetBytes(body, "model", c.model); err != nil {
			return nil, err
		}
	}
	return body, nil
}

// Stream reads "data: " lines until "[DONE]" or EOF. Lines that are not
// valid JSON or carry no delta content are skipped.
func (c *gatewayClient) Stream(ctx context.Context, req Request, onFragment func(string)) error {
	body, err := c.chatBody(req)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.post(ctx, gatewayChatPath, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	for {
		line, skipped, err := nextLine(reader)
		if !skipped && strings.HasPrefix(line, sseDataPrefix) {
			payload := strings.TrimPrefix(line, sseDataPrefix)
			if payload == sseDone {
				return nil
			}
			if gjson.Valid(payload) {
				if content := gjson.Get(payload, "choices.0.delta.content").String(); content != "" {
					onFragment(content)
				}
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error reading stream: %w", err)
		}
	}
}

// nextLine reads one line without its terminator. Lines longer than
// maxSSELine are consumed and dropped with skipped set.
func nextLine(r *bufio.Reader) (line string, skipped bool, err error) {
	var sb strings.Builder
	for {
		var chunk []byte
		chunk, err = r.ReadSlice('\n')
		if !skipped {
			if sb.Len()+len(chunk) > maxSSELine {
				skipped = true
				sb.Reset()
			} else {
				sb.Write(chunk)
			}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if skipped {
			return "", true, err
		}
		return strings.TrimRight(sb.String(), "\r\n"), false, err
	}
}

func (c *gatewayClient) Complete(ctx context.Context, req Request) (string, error) {
	return collect(ctx, c, req)
}

// TranslateCode uses the gateway's dedicated translation endpoint
func (c *gatewayClient) TranslateCode(ctx context.Context, code, from, to string) (string, error) {
	body := []byte(`{}`)
	var err error
	for _, kv := range [][2]string{{"code", code}, {"fromLanguage", from}, {"toLanguage", to}} {
		if body, err = sjson.SetBytes(body, kv[0], kv[1]); err != nil {
			return "", fmt.Errorf("failed to build request: %w", err)
		}
	}

	resp, err := c.post(ctx, gatewayTranslatePath, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("invalid translation response: %s", truncate(string(data), 200))
	}

	translated := gjson.GetBytes(data, "translatedCode").String()
	if translated == "" {
		return "", ErrEmptyResponse
	}
	return translated, nil
}

func (c *gatewayClient) Provider() string {
	return "gateway"
}

func (c *gatewayClient) Model() string {
	return c.model
}

// truncate shortens s for inclusion in error messages
func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
