package agent

import (
	"context"
	"fmt"

	"github.com/tripbuddy/tripbuddy-agent/internal/llm"
	"github.com/tripbuddy/tripbuddy-agent/internal/models"
	"github.com/tripbuddy/tripbuddy-agent/internal/prompts"
)

const (
	gateMaxTokens   = 500
	gateTemperature = 0.1 // low temperature for consistent verdicts
)

// Gate is a model-backed policy classifier. It inspects one piece of text
// with the traveler profile as context and returns a verdict: triggered or
// not, plus a short rationale. Gates run on the cheaper guard-tier model.
type Gate struct {
	name         string
	instructions string
	provider     llm.Provider
}

// NewInputGate builds the gate that screens user requests before the
// responder runs: illegal, unsafe, or restricted destinations, and
// irrelevant or offensive messages.
func NewInputGate(provider llm.Provider) *Gate {
	return &Gate{
		name:         "input guardrail",
		instructions: prompts.InputGateInstructions,
		provider:     provider,
	}
}

// NewOutputGate builds the gate that screens candidate replies before
// delivery: medical or legal advice, and booking confirmations that omit
// the cost.
func NewOutputGate(provider llm.Provider) *Gate {
	return &Gate{
		name:         "output guardrail",
		instructions: prompts.OutputGateInstructions,
		provider:     provider,
	}
}

// Check classifies the given text. Provider failures and malformed verdicts
// propagate as errors; there is no retry.
func (g *Gate) Check(ctx context.Context, text string, profile *models.UserProfile) (*models.GateVerdict, error) {
	request := &llm.Request{
		Prompt:      prompts.BuildGatePrompt(g.instructions, profile, text),
		MaxTokens:   gateMaxTokens,
		Temperature: gateTemperature,
	}

	response, err := g.provider.Complete(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("%s check failed: %w", g.name, err)
	}

	verdict, err := prompts.ParseGateVerdict(response.Content)
	if err != nil {
		return nil, fmt.Errorf("%s returned malformed verdict: %w", g.name, err)
	}

	return verdict, nil
}
