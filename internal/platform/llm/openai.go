package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	ProviderOpenAI = "openai"

	openAIDefaultModel = "gpt-5-mini"
)

var openAIModels = []ModelInfo{
	{ID: "gpt-5.2", Name: "GPT-5.2", Description: "Best for coding and agentic tasks", Latency: "Moderate"},
	{ID: "gpt-5-mini", Name: "GPT-5 Mini", Description: "Fast, cost-efficient for well-defined tasks", Latency: "Fast"},
	{ID: "gpt-5-nano", Name: "GPT-5 Nano", Description: "Fastest, most cost-efficient", Latency: "Fastest"},
}

type OpenAIProvider struct {
	creds   Credentials
	baseURL string
}

// NewOpenAIProvider builds a provider; baseURL must include the /v1 suffix when set.
func NewOpenAIProvider(creds Credentials, baseURL string) *OpenAIProvider {
	return &OpenAIProvider{creds: creds, baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/")}
}

func (p *OpenAIProvider) Name() string         { return ProviderOpenAI }
func (p *OpenAIProvider) DefaultModel() string { return openAIDefaultModel }
func (p *OpenAIProvider) Models() []ModelInfo  { return append([]ModelInfo(nil), openAIModels...) }

func (p *OpenAIProvider) client() (*openai.Client, error) {
	apiKey := ""
	if p.creds != nil {
		apiKey = p.creds.APIKey("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not configured")
	}
	cfg := openai.DefaultConfig(apiKey)
	if p.baseURL != "" {
		cfg.BaseURL = p.baseURL
	}
	return openai.NewClientWithConfig(cfg), nil
}

func (p *OpenAIProvider) SendMessage(ctx context.Context, userMessage string, opts SendOptions) (string, error) {
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = openAIDefaultModel
	}
	c, err := p.client()
	if err != nil {
		return "", wrapErr(ProviderOpenAI, model, err)
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if opts.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: opts.SystemPrompt})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: userMessage})

	resp, err := c.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:               model,
		MaxCompletionTokens: maxTokensOrDefault(opts.MaxTokens),
		Messages:            messages,
	})
	if err != nil {
		return "", wrapErr(ProviderOpenAI, model, err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
