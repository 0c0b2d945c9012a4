package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripbuddy/tripbuddy-agent/internal/models"
	"github.com/tripbuddy/tripbuddy-agent/internal/session"
)

type stubPipeline struct {
	outcome       *models.Outcome
	err           error
	calls         int
	conversations []string
}

func (s *stubPipeline) Process(ctx context.Context, conversation string, profile *models.UserProfile) (*models.Outcome, error) {
	s.calls++
	s.conversations = append(s.conversations, conversation)
	return s.outcome, s.err
}

func newHandler(pipeline Pipeline) (*ChatHandler, *session.Manager) {
	sessions := session.NewManager(session.NewMemoryStore())
	profile := &models.UserProfile{Name: "Mark Willson", Age: 45, DepartureCity: "Tokyo", Budget: 180.4}
	return NewChatHandler(pipeline, sessions, profile), sessions
}

func TestProcessMessageValidation(t *testing.T) {
	pipeline := &stubPipeline{outcome: models.Success("hi")}
	handler, _ := newHandler(pipeline)

	tests := []struct {
		name    string
		request *models.ChatRequest
	}{
		{"missing session id", &models.ChatRequest{Message: "hello"}},
		{"missing message", &models.ChatRequest{SessionID: "s1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := handler.ProcessMessage(context.Background(), tt.request)
			require.NoError(t, err)
			assert.Equal(t, models.StatusError, response.Status)
			require.NotNil(t, response.ErrorCode)
			assert.Equal(t, models.ErrorBadRequest, *response.ErrorCode)
			assert.Equal(t, 0, pipeline.calls)
		})
	}
}

func TestProcessMessageSuccess(t *testing.T) {
	pipeline := &stubPipeline{outcome: models.Success("Flights from Tokyo to Seoul start at $120.")}
	handler, sessions := newHandler(pipeline)

	response, err := handler.ProcessMessage(context.Background(), &models.ChatRequest{
		SessionID: "s1",
		Message:   "find me a flight to Seoul",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusSuccess, response.Status)
	assert.Equal(t, "Flights from Tokyo to Seoul start at $120.", response.Reply)
	assert.Nil(t, response.ErrorCode)

	// The pipeline saw the serialized transcript including the new message.
	require.Len(t, pipeline.conversations, 1)
	assert.Equal(t, "User: find me a flight to Seoul", pipeline.conversations[0])

	// One user turn and one agent turn were recorded.
	turns, err := sessions.Turns(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, models.RoleUser, turns[0].Role)
	assert.Equal(t, models.RoleAgent, turns[1].Role)
	assert.Equal(t, "Flights from Tokyo to Seoul start at $120.", turns[1].Content)
}

func TestProcessMessageBlockedInput(t *testing.T) {
	pipeline := &stubPipeline{outcome: models.BlockedInput("restricted destination")}
	handler, sessions := newHandler(pipeline)

	response, err := handler.ProcessMessage(context.Background(), &models.ChatRequest{
		SessionID: "s1",
		Message:   "book me a trip",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusBlockedInput, response.Status)
	assert.Equal(t, "Request blocked: restricted destination", response.Reply)

	// Block notices are appended as agent turns too.
	turns, err := sessions.Turns(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "Request blocked: restricted destination", turns[1].Content)
}

func TestProcessMessageBlockedOutput(t *testing.T) {
	pipeline := &stubPipeline{outcome: models.BlockedOutput("missing cost")}
	handler, _ := newHandler(pipeline)

	response, err := handler.ProcessMessage(context.Background(), &models.ChatRequest{
		SessionID: "s1",
		Message:   "book it",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusBlockedOutput, response.Status)
	assert.Equal(t, "Response blocked: missing cost", response.Reply)
}

func TestProcessMessagePipelineError(t *testing.T) {
	pipeline := &stubPipeline{err: errors.New("model unavailable")}
	handler, sessions := newHandler(pipeline)

	response, err := handler.ProcessMessage(context.Background(), &models.ChatRequest{
		SessionID: "s1",
		Message:   "hello",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusError, response.Status)
	require.NotNil(t, response.ErrorCode)
	assert.Equal(t, models.ErrorLLMFailed, *response.ErrorCode)

	// The failed turn leaves the user turn behind but records no agent turn.
	turns, err := sessions.Turns(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, models.RoleUser, turns[0].Role)
}

func TestProcessMessageAccumulatesHistory(t *testing.T) {
	pipeline := &stubPipeline{outcome: models.Success("reply")}
	handler, _ := newHandler(pipeline)

	for _, msg := range []string{"first", "second"} {
		_, err := handler.ProcessMessage(context.Background(), &models.ChatRequest{
			SessionID: "s1",
			Message:   msg,
		})
		require.NoError(t, err)
	}

	require.Len(t, pipeline.conversations, 2)
	assert.Equal(t, "User: first", pipeline.conversations[0])
	assert.Equal(t, "User: first\nAgent: reply\nUser: second", pipeline.conversations[1])
}
