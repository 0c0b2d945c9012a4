package agent

import (
	"context"

	"github.com/tripbuddy/tripbuddy-agent/internal/models"
)

// Checker classifies one piece of text against a policy.
type Checker interface {
	Check(ctx context.Context, text string, profile *models.UserProfile) (*models.GateVerdict, error)
}

// Replier produces a candidate reply for a serialized conversation.
type Replier interface {
	Reply(ctx context.Context, conversation string, profile *models.UserProfile) (string, error)
}

// Pipeline runs one conversation turn: input gate, responder, output gate,
// strictly in that order, each call waiting on the previous result. It
// returns exactly one outcome per turn: a delivered reply, a blocked input,
// or a blocked output. Any provider error aborts the turn and propagates to
// the caller.
type Pipeline struct {
	inputGate  Checker
	responder  Replier
	outputGate Checker
}

func NewPipeline(inputGate Checker, responder Replier, outputGate Checker) *Pipeline {
	return &Pipeline{
		inputGate:  inputGate,
		responder:  responder,
		outputGate: outputGate,
	}
}

// Process runs the turn for the given serialized conversation, which must
// already include the newest user message. The transcript itself is owned
// by the caller and never touched here.
func (p *Pipeline) Process(ctx context.Context, conversation string, profile *models.UserProfile) (*models.Outcome, error) {
	verdict, err := p.inputGate.Check(ctx, conversation, profile)
	if err != nil {
		return nil, err
	}
	if verdict.Triggered {
		// The responder never runs for a blocked request.
		return models.BlockedInput(verdict.Reasoning), nil
	}

	reply, err := p.responder.Reply(ctx, conversation, profile)
	if err != nil {
		return nil, err
	}

	verdict, err = p.outputGate.Check(ctx, reply, profile)
	if err != nil {
		return nil, err
	}
	if verdict.Triggered {
		// The candidate reply is discarded, only the rationale survives.
		return models.BlockedOutput(verdict.Reasoning), nil
	}

	return models.Success(reply), nil
}
