package model

import (
	"context"
	"time"
)

// LeadRecord is one structured-extraction result. Empty string means the
// field was not mentioned; extraction never invents values.
type LeadRecord struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Platform string `json:"platform"`
}

// Receipt confirms a lead hand-off to the CRM/webhook collaborator.
type Receipt struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Platform   string    `json:"platform"`
	Status     string    `json:"status"`
	CapturedAt time.Time `json:"captured_at"`
}

// TextGenerator is the black-box text-completion collaborator. Implementations
// must be safe for concurrent use; failures surface as errors and are handled
// at each call site.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// KnowledgeBase is the static knowledge lookup collaborator. An empty string
// means nothing relevant was found; errors indicate hard lookup failure only.
type KnowledgeBase interface {
	Retrieve(ctx context.Context, query string) (string, error)
}

// LeadCapturer submits a completed lead. It fails with a validation error
// when any field is empty; the collect stage rechecks completeness before
// calling, so such a failure signals a logic bug.
type LeadCapturer interface {
	Capture(ctx context.Context, name, email, platform string) (*Receipt, error)
}
