package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	ProviderAnthropic = "anthropic"

	anthropicAPIVersion   = "2023-06-01"
	anthropicDefaultURL   = "https://api.anthropic.com"
	anthropicDefaultModel = "claude-haiku-4-5-20251001"
)

var anthropicModels = []ModelInfo{
	{ID: "claude-haiku-4-5-20251001", Name: "Claude Haiku 4.5", Description: "Fastest, most cost-efficient", Latency: "Fastest"},
	{ID: "claude-sonnet-4-5-20250929", Name: "Claude Sonnet 4.5", Description: "Balanced quality and speed", Latency: "Moderate"},
	{ID: "claude-opus-4-1-20250805", Name: "Claude Opus 4.1", Description: "Highest quality", Latency: "Slow"},
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type AnthropicProvider struct {
	creds      Credentials
	baseURL    string
	httpClient *http.Client
}

func NewAnthropicProvider(creds Credentials, baseURL string) *AnthropicProvider {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = anthropicDefaultURL
	}
	return &AnthropicProvider{
		creds:      creds,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

func (p *AnthropicProvider) Name() string         { return ProviderAnthropic }
func (p *AnthropicProvider) DefaultModel() string { return anthropicDefaultModel }
func (p *AnthropicProvider) Models() []ModelInfo  { return append([]ModelInfo(nil), anthropicModels...) }

func (p *AnthropicProvider) SendMessage(ctx context.Context, userMessage string, opts SendOptions) (string, error) {
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = anthropicDefaultModel
	}
	apiKey := ""
	if p.creds != nil {
		apiKey = p.creds.APIKey("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return "", wrapErr(ProviderAnthropic, model, fmt.Errorf("ANTHROPIC_API_KEY not configured"))
	}

	body, err := json.Marshal(anthropicRequest{
		Model:     model,
		MaxTokens: maxTokensOrDefault(opts.MaxTokens),
		System:    opts.SystemPrompt,
		Messages:  []anthropicMessage{{Role: "user", Content: userMessage}},
	})
	if err != nil {
		return "", wrapErr(ProviderAnthropic, model, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", wrapErr(ProviderAnthropic, model, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", anthropicAPIVersion)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", wrapErr(ProviderAnthropic, model, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", wrapErr(ProviderAnthropic, model, err)
	}

	var out anthropicResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", wrapErr(ProviderAnthropic, model, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err))
	}
	if resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(raw))
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", wrapErr(ProviderAnthropic, model, fmt.Errorf("status %d: %s", resp.StatusCode, msg))
	}
	for _, block := range out.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", nil
}
