package session

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/memory"

	"github.com/tripbuddy/tripbuddy-agent/internal/models"
)

// Manager orchestrates per-session conversation memory: a LangChainGo
// conversation buffer per session for prompt building, mirrored into the
// Store for inspection and counting.
type Manager struct {
	store         Store
	sessions      map[string]*memory.ConversationBuffer
	defaultUserID string
}

// NewManager creates a new session manager
func NewManager(store Store) *Manager {
	return &Manager{
		store:         store,
		sessions:      make(map[string]*memory.ConversationBuffer),
		defaultUserID: "default_user",
	}
}

// GetOrCreateSession gets or creates the conversation buffer for a session,
// replaying any turns already in the store.
func (m *Manager) GetOrCreateSession(ctx context.Context, sessionID string) (*memory.ConversationBuffer, error) {
	if mem, exists := m.sessions[sessionID]; exists {
		return mem, nil
	}

	mem := memory.NewConversationBuffer()

	sessionData, err := m.store.LoadSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	for _, turn := range sessionData.Turns {
		var chatMsg llms.ChatMessage

		switch turn.Role {
		case models.RoleUser:
			chatMsg = llms.HumanChatMessage{Content: turn.Content}
		case models.RoleAgent:
			chatMsg = llms.AIChatMessage{Content: turn.Content}
		default:
			log.Printf("Unknown turn role: %s, skipping", turn.Role)
			continue
		}

		if err := mem.ChatHistory.AddMessage(ctx, chatMsg); err != nil {
			return nil, fmt.Errorf("failed to add turn to memory: %w", err)
		}
	}

	m.sessions[sessionID] = mem

	return mem, nil
}

// SaveUserTurn appends a user turn to both the buffer and the store.
func (m *Manager) SaveUserTurn(ctx context.Context, sessionID, userID, content string) error {
	mem, err := m.GetOrCreateSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := mem.ChatHistory.AddUserMessage(ctx, content); err != nil {
		return fmt.Errorf("failed to add user turn to memory: %w", err)
	}

	turn := models.Turn{Role: models.RoleUser, Content: content}
	if err := m.store.AppendTurn(ctx, sessionID, userID, turn); err != nil {
		return fmt.Errorf("failed to save user turn: %w", err)
	}

	return nil
}

// SaveAgentTurn appends an agent turn to both the buffer and the store.
func (m *Manager) SaveAgentTurn(ctx context.Context, sessionID, userID, content string) error {
	mem, err := m.GetOrCreateSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := mem.ChatHistory.AddAIMessage(ctx, content); err != nil {
		return fmt.Errorf("failed to add agent turn to memory: %w", err)
	}

	turn := models.Turn{Role: models.RoleAgent, Content: content}
	if err := m.store.AppendTurn(ctx, sessionID, userID, turn); err != nil {
		return fmt.Errorf("failed to save agent turn: %w", err)
	}

	return nil
}

// ConversationPrompt serializes the session history in the same
// "User: ...\nAgent: ..." format the pipeline expects, trailing whitespace
// trimmed.
func (m *Manager) ConversationPrompt(ctx context.Context, sessionID string) (string, error) {
	mem, err := m.GetOrCreateSession(ctx, sessionID)
	if err != nil {
		return "", err
	}

	messages, err := mem.ChatHistory.Messages(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get messages: %w", err)
	}

	var b strings.Builder
	for _, msg := range messages {
		switch msg := msg.(type) {
		case llms.HumanChatMessage:
			fmt.Fprintf(&b, "User: %s\n", msg.Content)
		case llms.AIChatMessage:
			fmt.Fprintf(&b, "Agent: %s\n", msg.Content)
		}
	}

	return strings.TrimSpace(b.String()), nil
}

// Turns returns the stored turns for a session.
func (m *Manager) Turns(ctx context.Context, sessionID string) ([]models.Turn, error) {
	return m.store.Turns(ctx, sessionID)
}

// ClearSession clears a session from both the buffer cache and the store.
func (m *Manager) ClearSession(ctx context.Context, sessionID string) error {
	delete(m.sessions, sessionID)

	if err := m.store.ClearSession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

// SessionExists checks if a session exists in the store.
func (m *Manager) SessionExists(ctx context.Context, sessionID string) (bool, error) {
	return m.store.SessionExists(ctx, sessionID)
}

// ActiveSessionCount returns the number of cached sessions.
func (m *Manager) ActiveSessionCount() int {
	return len(m.sessions)
}

// Close closes the underlying store if it needs closing.
func (m *Manager) Close() error {
	if closer, ok := m.store.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
