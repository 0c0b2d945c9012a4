package agent

import (
	"context"
	"fmt"

	"github.com/tripbuddy/tripbuddy-agent/internal/llm"
	"github.com/tripbuddy/tripbuddy-agent/internal/models"
	"github.com/tripbuddy/tripbuddy-agent/internal/prompts"
)

const (
	responderMaxTokens   = 1000
	responderTemperature = 0.4
)

// Responder is the primary travel-booking agent. Given the serialized
// conversation and the traveler profile it produces one candidate reply.
// Its raw output is never shown to the user until the output gate clears it.
type Responder struct {
	provider llm.Provider
}

// NewResponder binds the responder to the capable-tier model.
func NewResponder(provider llm.Provider) *Responder {
	return &Responder{provider: provider}
}

// Reply generates a candidate reply for the conversation so far.
func (r *Responder) Reply(ctx context.Context, conversation string, profile *models.UserProfile) (string, error) {
	request := &llm.Request{
		Prompt:      prompts.BuildResponderPrompt(profile, conversation),
		MaxTokens:   responderMaxTokens,
		Temperature: responderTemperature,
	}

	response, err := r.provider.Complete(ctx, request)
	if err != nil {
		return "", fmt.Errorf("responder call failed: %w", err)
	}

	reply, err := prompts.ParseResponderReply(response.Content)
	if err != nil {
		return "", fmt.Errorf("responder returned malformed reply: %w", err)
	}

	return reply, nil
}
