// Package leads hands completed leads off to the CRM side. Capturers
// validate their input defensively: the collect stage only calls with all
// three fields present, so a validation failure indicates a logic bug and is
// propagated instead of swallowed.
package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
	logx "github.com/InsaneJSK/Inflx-AI/pkg/logger"
)

// ValidationError reports a lead capture attempted with an empty field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("lead capture: %s must not be empty", e.Field)
}

func validate(name, email, platform string) error {
	switch {
	case name == "":
		return &ValidationError{Field: "name"}
	case email == "":
		return &ValidationError{Field: "email"}
	case platform == "":
		return &ValidationError{Field: "platform"}
	}
	return nil
}

func newReceipt(name, email, platform string) *model.Receipt {
	return &model.Receipt{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Platform:   platform,
		Status:     "success",
		CapturedAt: time.Now().UTC(),
	}
}

// MemoryCapturer stores receipts in process memory. Used by the demo entry
// point and tests.
type MemoryCapturer struct {
	mu       sync.Mutex
	receipts []*model.Receipt
}

func NewMemoryCapturer() *MemoryCapturer {
	return &MemoryCapturer{}
}

func (c *MemoryCapturer) Capture(_ context.Context, name, email, platform string) (*model.Receipt, error) {
	if err := validate(name, email, platform); err != nil {
		return nil, err
	}
	r := newReceipt(name, email, platform)
	c.mu.Lock()
	c.receipts = append(c.receipts, r)
	c.mu.Unlock()
	logx.Info().
		Str("receipt_id", r.ID).
		Str("name", name).
		Str("platform", platform).
		Msg("lead captured")
	return r, nil
}

// Receipts returns a copy of every capture so far.
func (c *MemoryCapturer) Receipts() []*model.Receipt {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*model.Receipt, len(c.receipts))
	copy(out, c.receipts)
	return out
}

// WebhookCapturer posts captured leads to a CRM webhook endpoint.
type WebhookCapturer struct {
	url    string
	client *http.Client
}

func NewWebhookCapturer(url string) *WebhookCapturer {
	return &WebhookCapturer{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *WebhookCapturer) Capture(ctx context.Context, name, email, platform string) (*model.Receipt, error) {
	if err := validate(name, email, platform); err != nil {
		return nil, err
	}
	r := newReceipt(name, email, platform)

	body, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal lead receipt: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build lead webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post lead webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("lead webhook returned status %d", resp.StatusCode)
	}

	logx.Info().
		Str("receipt_id", r.ID).
		Str("url", c.url).
		Int("status", resp.StatusCode).
		Msg("lead posted to webhook")
	return r, nil
}

var (
	_ model.LeadCapturer = (*MemoryCapturer)(nil)
	_ model.LeadCapturer = (*WebhookCapturer)(nil)
)
