package session

import (
	"context"
	"time"

	"github.com/tripbuddy/tripbuddy-agent/internal/models"
)

// SessionData represents all data for one chat session
type SessionData struct {
	SessionID string        `json:"session_id"`
	UserID    string        `json:"user_id"`
	Turns     []models.Turn `json:"turns"`
	Metadata  Metadata      `json:"metadata"`
}

// Metadata contains session information
type Metadata struct {
	StartedAt    time.Time `json:"started_at"`
	LastActivity time.Time `json:"last_activity"`
	TurnCount    int       `json:"turn_count"`
}

// Store defines the interface for session transcript storage. The only
// implementation is in-memory; transcripts live exactly as long as the
// process does.
type Store interface {
	// LoadSession loads a session, returning an empty one if it does not exist
	LoadSession(ctx context.Context, sessionID string) (*SessionData, error)

	// AppendTurn appends a turn to a session
	AppendTurn(ctx context.Context, sessionID, userID string, turn models.Turn) error

	// Turns retrieves all turns for a session in chronological order
	Turns(ctx context.Context, sessionID string) ([]models.Turn, error)

	// ClearSession removes a session from storage
	ClearSession(ctx context.Context, sessionID string) error

	// SessionExists checks if a session exists
	SessionExists(ctx context.Context, sessionID string) (bool, error)

	// Touch updates the last activity timestamp
	Touch(ctx context.Context, sessionID string) error
}
