package llm

import "context"

// Provider defines the interface for model-backed completion providers. The
// contract is deliberately narrow: submit a prompt, get back the raw content
// of a structured reply, or an error. There are no retries at this layer; a
// failed call is fatal for the turn that issued it.
type Provider interface {
	Complete(ctx context.Context, request *Request) (*Response, error)
}

// Request represents the structured request to the model
type Request struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Response represents the raw response from the model
type Response struct {
	Content string
	Usage   *Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}
