package conversations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
	"github.com/InsaneJSK/Inflx-AI/internal/agent/repo"
)

func TestGetOrCreateInitializesUnknownSession(t *testing.T) {
	sm := NewStateManager(repo.NewMemoryStateRepository())

	state, err := sm.GetOrCreate(context.Background(), "fresh")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Empty(t, state.History)
	assert.False(t, state.CollectingLead)
}

func TestSaveThenGetOrCreateRoundTrips(t *testing.T) {
	sm := NewStateManager(repo.NewMemoryStateRepository())
	ctx := context.Background()

	state := model.NewConversationState()
	state.AddTurn(model.RoleUser, "hello")
	state.LastIntent = model.IntentGreeting
	require.NoError(t, sm.Save(ctx, "s1", state))

	got, err := sm.GetOrCreate(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, state.History, got.History)
	assert.Equal(t, model.IntentGreeting, got.LastIntent)
}

func TestResetDiscardsState(t *testing.T) {
	sm := NewStateManager(repo.NewMemoryStateRepository())
	ctx := context.Background()

	state := model.NewConversationState()
	state.AddTurn(model.RoleUser, "hello")
	require.NoError(t, sm.Save(ctx, "s1", state))
	require.NoError(t, sm.Reset(ctx, "s1"))

	got, err := sm.GetOrCreate(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, got.History)
}
