package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	ProviderGoogle = "google"

	googleDefaultModel = "gemini-2.5-flash"
)

var googleModels = []ModelInfo{
	{ID: "gemini-2.5-pro", Name: "Gemini 2.5 Pro", Description: "Most capable reasoning model", Latency: "Slow"},
	{ID: "gemini-2.5-flash", Name: "Gemini 2.5 Flash", Description: "Balanced price and performance", Latency: "Fast"},
	{ID: "gemini-2.5-flash-lite", Name: "Gemini 2.5 Flash-Lite", Description: "Lowest latency", Latency: "Fastest"},
}

type GoogleProvider struct {
	creds   Credentials
	baseURL string
}

func NewGoogleProvider(creds Credentials, baseURL string) *GoogleProvider {
	return &GoogleProvider{creds: creds, baseURL: strings.TrimSpace(baseURL)}
}

func (p *GoogleProvider) Name() string         { return ProviderGoogle }
func (p *GoogleProvider) DefaultModel() string { return googleDefaultModel }
func (p *GoogleProvider) Models() []ModelInfo  { return append([]ModelInfo(nil), googleModels...) }

func (p *GoogleProvider) SendMessage(ctx context.Context, userMessage string, opts SendOptions) (string, error) {
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = googleDefaultModel
	}
	apiKey := ""
	if p.creds != nil {
		apiKey = p.creds.APIKey("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return "", wrapErr(ProviderGoogle, model, fmt.Errorf("GOOGLE_API_KEY not configured"))
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if p.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: p.baseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return "", wrapErr(ProviderGoogle, model, err)
	}

	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokensOrDefault(opts.MaxTokens)),
	}
	if opts.SystemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(opts.SystemPrompt, genai.RoleUser)
	}
	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(userMessage), cfg)
	if err != nil {
		return "", wrapErr(ProviderGoogle, model, err)
	}
	if resp == nil {
		return "", nil
	}
	return resp.Text(), nil
}
