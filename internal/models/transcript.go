package models

import (
	"fmt"
	"strings"
)

// Role identifies who produced a turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Turn is a single message in a conversation. Immutable once created.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Transcript is the ordered, append-only history of one chat session.
// Turns are never edited or removed; the full history is re-serialized
// into the prompt on every turn.
type Transcript struct {
	turns []Turn
}

// Append adds a turn to the end of the transcript.
func (t *Transcript) Append(role Role, content string) {
	t.turns = append(t.turns, Turn{Role: role, Content: content})
}

// Turns returns a copy of the recorded turns in chronological order.
func (t *Transcript) Turns() []Turn {
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Len returns the number of recorded turns.
func (t *Transcript) Len() int {
	return len(t.turns)
}

// Prompt serializes the transcript into the single conversation string fed
// to the gates and the responder: one "User: ..." or "Agent: ..." line per
// turn, trailing whitespace trimmed.
func (t *Transcript) Prompt() string {
	var b strings.Builder
	for _, turn := range t.turns {
		label := "Agent"
		if turn.Role == RoleUser {
			label = "User"
		}
		fmt.Fprintf(&b, "%s: %s\n", label, turn.Content)
	}
	return strings.TrimSpace(b.String())
}
