package model

import (
	"context"
	"strings"
)

// MaxTurns bounds the rolling conversation history. Oldest turns are dropped
// first; insertion order is preserved for the retained tail.
const MaxTurns = 5

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single transcript entry. Immutable once appended.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ConversationState is the per-session dialogue record. One session owns it
// exclusively; the engine serializes traversals per session key, so no
// internal locking is needed.
type ConversationState struct {
	History    []Turn `json:"history"`
	LastIntent Intent `json:"last_intent,omitempty"`

	// Lead collection. CollectingLead is sticky: once set it stays set until
	// all three fields are filled and captured, or ResetLeadCapture is called.
	CollectingLead bool   `json:"collecting_lead"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	Platform       string `json:"platform,omitempty"`

	// KnowledgeGrounded holds only for the most recent reply; reset on every
	// classify step.
	KnowledgeGrounded bool `json:"knowledge_grounded"`

	// LeadJustCaptured is edge-triggered: set exactly when the lead fields
	// transition from incomplete to complete, cleared by the consumer via
	// ConsumeLeadJustCaptured.
	LeadJustCaptured bool `json:"lead_just_captured"`
}

// NewConversationState returns a fresh state for a new session.
func NewConversationState() *ConversationState {
	return &ConversationState{History: []Turn{}}
}

// AddTurn appends a turn and trims the history to the most recent MaxTurns.
func (c *ConversationState) AddTurn(role Role, content string) {
	c.History = append(c.History, Turn{Role: role, Content: content})
	if len(c.History) > MaxTurns {
		c.History = c.History[len(c.History)-MaxTurns:]
	}
}

// Transcript renders the history as "role: content" lines for prompting.
func (c *ConversationState) Transcript() string {
	var b strings.Builder
	for i, t := range c.History {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(string(t.Role))
		b.WriteString(": ")
		b.WriteString(t.Content)
	}
	return b.String()
}

// MergeLead updates the lead fields from an extraction record. First
// non-empty value wins per field per collection cycle; later extractions
// never overwrite an already-set field.
func (c *ConversationState) MergeLead(rec LeadRecord) {
	if c.Name == "" {
		c.Name = rec.Name
	}
	if c.Email == "" {
		c.Email = rec.Email
	}
	if c.Platform == "" {
		c.Platform = rec.Platform
	}
}

// MissingLeadFields lists the unfilled lead fields in fixed order:
// name, email, platform.
func (c *ConversationState) MissingLeadFields() []string {
	var missing []string
	if c.Name == "" {
		missing = append(missing, "name")
	}
	if c.Email == "" {
		missing = append(missing, "email")
	}
	if c.Platform == "" {
		missing = append(missing, "platform")
	}
	return missing
}

// LeadComplete reports whether all three lead fields are filled.
func (c *ConversationState) LeadComplete() bool {
	return len(c.MissingLeadFields()) == 0
}

// ResetLeadCapture clears the sticky collection flag and the lead fields,
// starting a new collection cycle. History and LastIntent are untouched.
func (c *ConversationState) ResetLeadCapture() {
	c.CollectingLead = false
	c.Name = ""
	c.Email = ""
	c.Platform = ""
}

// ConsumeLeadJustCaptured reads and clears the one-shot capture flag.
func (c *ConversationState) ConsumeLeadJustCaptured() bool {
	if !c.LeadJustCaptured {
		return false
	}
	c.LeadJustCaptured = false
	return true
}

// StateRepository persists ConversationState keyed by an opaque session id.
type StateRepository interface {
	// Get returns the stored state, or (nil, nil) when the session is unknown.
	Get(ctx context.Context, sessionID string) (*ConversationState, error)

	// Put stores the state for the session, refreshing any TTL.
	Put(ctx context.Context, sessionID string, state *ConversationState) error

	// Delete discards the session state.
	Delete(ctx context.Context, sessionID string) error
}
