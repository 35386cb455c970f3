package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
)

// MemoryStateRepository keeps session state in process memory. It round-trips
// through JSON so stored state is isolated from the caller's pointer, same as
// the Redis-backed repository.
type MemoryStateRepository struct {
	mu     sync.RWMutex
	states map[string][]byte
}

func NewMemoryStateRepository() *MemoryStateRepository {
	return &MemoryStateRepository{states: map[string][]byte{}}
}

func (r *MemoryStateRepository) Get(_ context.Context, sessionID string) (*model.ConversationState, error) {
	r.mu.RLock()
	raw, ok := r.states[sessionID]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var state model.ConversationState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("unmarshal session state: %w", err)
	}
	return &state, nil
}

func (r *MemoryStateRepository) Put(_ context.Context, sessionID string, state *model.ConversationState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}
	r.mu.Lock()
	r.states[sessionID] = b
	r.mu.Unlock()
	return nil
}

func (r *MemoryStateRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.states, sessionID)
	r.mu.Unlock()
	return nil
}

var _ model.StateRepository = (*MemoryStateRepository)(nil)
