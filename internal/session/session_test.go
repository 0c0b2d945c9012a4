package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripbuddy/tripbuddy-agent/internal/models"
)

func TestMemoryStoreAppendAndLoad(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	exists, err := store.SessionExists(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, exists)

	// Loading a missing session yields an empty one, not an error.
	session, err := store.LoadSession(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, session.Turns)

	require.NoError(t, store.AppendTurn(ctx, "s1", "u1", models.Turn{Role: models.RoleUser, Content: "hi"}))
	require.NoError(t, store.AppendTurn(ctx, "s1", "u1", models.Turn{Role: models.RoleAgent, Content: "hello"}))

	session, err = store.LoadSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, 2, session.Metadata.TurnCount)
	require.Len(t, session.Turns, 2)
	assert.Equal(t, models.RoleUser, session.Turns[0].Role)
	assert.Equal(t, models.RoleAgent, session.Turns[1].Role)

	exists, err = store.SessionExists(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryStoreClearSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.AppendTurn(ctx, "s1", "u1", models.Turn{Role: models.RoleUser, Content: "hi"}))
	require.NoError(t, store.ClearSession(ctx, "s1"))

	exists, err := store.SessionExists(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryStoreIsolatesSessions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.AppendTurn(ctx, "a", "u1", models.Turn{Role: models.RoleUser, Content: "from a"}))
	require.NoError(t, store.AppendTurn(ctx, "b", "u2", models.Turn{Role: models.RoleUser, Content: "from b"}))

	turnsA, err := store.Turns(ctx, "a")
	require.NoError(t, err)
	turnsB, err := store.Turns(ctx, "b")
	require.NoError(t, err)

	require.Len(t, turnsA, 1)
	require.Len(t, turnsB, 1)
	assert.Equal(t, "from a", turnsA[0].Content)
	assert.Equal(t, "from b", turnsB[0].Content)
}

func TestManagerConversationPrompt(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(NewMemoryStore())

	prompt, err := manager.ConversationPrompt(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, prompt)

	require.NoError(t, manager.SaveUserTurn(ctx, "s1", "u1", "a"))
	require.NoError(t, manager.SaveAgentTurn(ctx, "s1", "u1", "b"))
	require.NoError(t, manager.SaveUserTurn(ctx, "s1", "u1", "c"))

	prompt, err = manager.ConversationPrompt(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "User: a\nAgent: b\nUser: c", prompt)
}

func TestManagerTranscriptMonotonicity(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(NewMemoryStore())

	const n = 4
	for i := 0; i < n; i++ {
		require.NoError(t, manager.SaveUserTurn(ctx, "s1", "u1", fmt.Sprintf("msg %d", i)))
		require.NoError(t, manager.SaveAgentTurn(ctx, "s1", "u1", fmt.Sprintf("reply %d", i)))
	}

	turns, err := manager.Turns(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, turns, 2*n)

	users, agents := 0, 0
	for i, turn := range turns {
		switch turn.Role {
		case models.RoleUser:
			users++
			assert.Equal(t, fmt.Sprintf("msg %d", i/2), turn.Content)
		case models.RoleAgent:
			agents++
		}
	}
	assert.Equal(t, n, users)
	assert.Equal(t, n, agents)
}

func TestManagerReplaysStoredTurns(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.AppendTurn(ctx, "s1", "u1", models.Turn{Role: models.RoleUser, Content: "earlier"}))

	// A fresh manager over the same store picks up the existing history.
	manager := NewManager(store)
	prompt, err := manager.ConversationPrompt(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "User: earlier", prompt)
}

func TestManagerClearSession(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(NewMemoryStore())

	require.NoError(t, manager.SaveUserTurn(ctx, "s1", "u1", "hi"))
	assert.Equal(t, 1, manager.ActiveSessionCount())

	require.NoError(t, manager.ClearSession(ctx, "s1"))
	assert.Equal(t, 0, manager.ActiveSessionCount())

	exists, err := manager.SessionExists(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, exists)
}
