package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements Provider using the native Gemini API instead of
// the OpenAI-compatible endpoint.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	m := client.GenerativeModel(model)

	// Force JSON responses so the structured-reply parsers always see a
	// JSON object.
	m.ResponseMIMEType = "application/json"

	return &GeminiProvider{
		client: client,
		model:  m,
		name:   model,
	}, nil
}

// Close cleans up the underlying Gemini client.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

func (p *GeminiProvider) Complete(ctx context.Context, request *Request) (*Response, error) {
	p.model.SetTemperature(float32(request.Temperature))
	if request.MaxTokens > 0 {
		p.model.SetMaxOutputTokens(int32(request.MaxTokens))
	}

	resp, err := p.model.GenerateContent(ctx, genai.Text(request.Prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error for model %s: %w", p.name, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var content strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			content.WriteString(string(txt))
		}
	}

	response := &Response{Content: content.String()}
	if resp.UsageMetadata != nil {
		response.Usage = &Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}

	return response, nil
}
