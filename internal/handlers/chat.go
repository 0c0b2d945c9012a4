package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/tripbuddy/tripbuddy-agent/internal/models"
	"github.com/tripbuddy/tripbuddy-agent/internal/prompts"
	"github.com/tripbuddy/tripbuddy-agent/internal/session"
)

// Pipeline runs one conversation turn against the serialized transcript.
type Pipeline interface {
	Process(ctx context.Context, conversation string, profile *models.UserProfile) (*models.Outcome, error)
}

// ChatHandler ties one incoming chat message to a session transcript and a
// pipeline turn, and renders the outcome back as a wire response.
type ChatHandler struct {
	pipeline Pipeline
	sessions *session.Manager
	profile  *models.UserProfile
}

func NewChatHandler(pipeline Pipeline, sessions *session.Manager, profile *models.UserProfile) *ChatHandler {
	return &ChatHandler{
		pipeline: pipeline,
		sessions: sessions,
		profile:  profile,
	}
}

func (h *ChatHandler) ProcessMessage(ctx context.Context, request *models.ChatRequest) (*models.ChatResponse, error) {
	// Validate request
	if err := h.validateRequest(request); err != nil {
		return h.createErrorResponse(request, models.ErrorBadRequest, err.Error()), nil
	}

	userID := request.UserID
	if userID == "" {
		userID = "default_user"
	}

	// Append the new user turn, then re-serialize the whole history into
	// the prompt for this turn.
	if err := h.sessions.SaveUserTurn(ctx, request.SessionID, userID, request.Message); err != nil {
		return nil, err
	}

	conversation, err := h.sessions.ConversationPrompt(ctx, request.SessionID)
	if err != nil {
		return nil, err
	}

	outcome, err := h.pipeline.Process(ctx, conversation, h.profile)
	if err != nil {
		log.Printf("Pipeline failed for session %s: %v", request.SessionID, err)
		return h.createErrorResponse(request, models.ErrorLLMFailed, err.Error()), nil
	}

	// Exactly one agent turn per processed message, block notices included.
	reply := outcome.UserMessage()
	if err := h.sessions.SaveAgentTurn(ctx, request.SessionID, userID, reply); err != nil {
		return nil, err
	}

	log.Printf("Turn processed for session %s: status=%s", request.SessionID, outcome.Status)

	return &models.ChatResponse{
		SessionID: request.SessionID,
		Status:    outcome.Status,
		Reply:     reply,
	}, nil
}

func (h *ChatHandler) validateRequest(request *models.ChatRequest) error {
	if request.SessionID == "" {
		return fmt.Errorf("session_id is required")
	}
	if request.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}

func (h *ChatHandler) createErrorResponse(request *models.ChatRequest, errorCode, errorMessage string) *models.ChatResponse {
	return &models.ChatResponse{
		SessionID:    request.SessionID,
		Status:       models.StatusError,
		Reply:        prompts.FallbackMessage,
		ErrorCode:    &errorCode,
		ErrorMessage: &errorMessage,
	}
}
