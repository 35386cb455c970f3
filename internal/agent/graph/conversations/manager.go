package conversations

import (
	"context"
	"fmt"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
	logx "github.com/InsaneJSK/Inflx-AI/pkg/logger"
)

// StateManager owns the get-or-create / mutate / persist discipline for
// ConversationState around each graph traversal.
type StateManager struct {
	repo model.StateRepository
}

func NewStateManager(repo model.StateRepository) *StateManager {
	return &StateManager{repo: repo}
}

// GetOrCreate loads the session's state, initializing a fresh one for an
// unknown session key.
func (sm *StateManager) GetOrCreate(ctx context.Context, sessionID string) (*model.ConversationState, error) {
	state, err := sm.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %q: %w", sessionID, err)
	}
	if state == nil {
		logx.Debug().Str("session_id", sessionID).Msg("initializing fresh conversation state")
		state = model.NewConversationState()
	}
	return state, nil
}

// Save persists the state after a traversal.
func (sm *StateManager) Save(ctx context.Context, sessionID string, state *model.ConversationState) error {
	if err := sm.repo.Put(ctx, sessionID, state); err != nil {
		return fmt.Errorf("persist session %q: %w", sessionID, err)
	}
	return nil
}

// Reset discards the session's state entirely.
func (sm *StateManager) Reset(ctx context.Context, sessionID string) error {
	if err := sm.repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("reset session %q: %w", sessionID, err)
	}
	return nil
}
