package model

// AppState stores per-traversal state for the Eino graph.
// Concurrency model:
//   - Registered as Graph Local State via compose.WithGenLocalState.
//   - All reads/writes happen only inside Eino state handlers:
//     WithStatePreHandler, WithStatePostHandler, or compose.ProcessState.
//   - Eino serializes access to state within these handlers, so no additional
//     mutex/atomic is required as long as it is never touched outside them.
//   - Conversation points at the session record loaded for this traversal;
//     the conversations.StateManager persists it when the traversal ends.
type AppState struct {
	SessionID    string
	Query        string
	Conversation *ConversationState

	// Retrieved holds the knowledge text produced by the retrieve stage for
	// the respond stage; empty when nothing matched.
	Retrieved string

	// StagedReply holds the deterministic collect-lead reply for this
	// traversal. The respond stage falls back to it if generation fails.
	StagedReply string
}

// QueryInput represents one inbound user message addressed to a session.
type QueryInput struct {
	SessionID string `json:"session_id"`
	Query     string `json:"query"`
}

// RoutedQuery is the value passed along the stage graph after classification.
type RoutedQuery struct {
	SessionID string
	Query     string
	Intent    Intent
}
