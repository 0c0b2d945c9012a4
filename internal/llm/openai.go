package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAIProvider implements Provider against any OpenAI-compatible
// chat-completion endpoint. This is the default path: Gemini models are
// reached through Google's OpenAI-compatible base URL.
type OpenAIProvider struct {
	llm   *openai.LLM
	model string
}

func NewOpenAIProvider(apiKey, baseURL, model string, timeout time.Duration) (*OpenAIProvider, error) {
	client, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(baseURL),
		openai.WithModel(model),
		openai.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI-compatible client: %w", err)
	}

	return &OpenAIProvider{
		llm:   client,
		model: model,
	}, nil
}

func (p *OpenAIProvider) Complete(ctx context.Context, request *Request) (*Response, error) {
	content, err := llms.GenerateFromSinglePrompt(ctx, p.llm, request.Prompt,
		llms.WithJSONMode(),
		llms.WithMaxTokens(request.MaxTokens),
		llms.WithTemperature(request.Temperature),
	)
	if err != nil {
		return nil, fmt.Errorf("completion failed for model %s: %w", p.model, err)
	}

	return &Response{Content: content}, nil
}
