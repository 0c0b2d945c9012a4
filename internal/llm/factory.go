package llm

import (
	"context"
	"fmt"
	"time"
)

// Provider names accepted by NewProvider.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderMock   = "mock"
)

// NewProvider builds a Provider bound to one model tier. The same provider
// kind is instantiated twice by callers: once on the guard tier for the two
// gates, once on the responder tier.
func NewProvider(ctx context.Context, kind, apiKey, baseURL, model string, timeout time.Duration) (Provider, error) {
	switch kind {
	case ProviderOpenAI:
		return NewOpenAIProvider(apiKey, baseURL, model, timeout)
	case ProviderGemini:
		return NewGeminiProvider(ctx, apiKey, model)
	case ProviderMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", kind)
	}
}
