package nodes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/intent"
	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
)

// scriptedGenerator returns queued replies in order; after the queue drains
// it keeps returning the last entry.
type scriptedGenerator struct {
	replies []string
	err     error
	calls   int
	prompts []string
}

func (g *scriptedGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.calls++
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	if len(g.replies) == 0 {
		return "", nil
	}
	reply := g.replies[0]
	if len(g.replies) > 1 {
		g.replies = g.replies[1:]
	}
	return reply, nil
}

type stubKB struct {
	text string
	err  error
}

func (kb *stubKB) Retrieve(_ context.Context, _ string) (string, error) {
	return kb.text, kb.err
}

type recordingCapturer struct {
	captured []model.LeadRecord
	err      error
}

func (c *recordingCapturer) Capture(_ context.Context, name, email, platform string) (*model.Receipt, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.captured = append(c.captured, model.LeadRecord{Name: name, Email: email, Platform: platform})
	return &model.Receipt{ID: "lead-123", Name: name, Email: email, Platform: platform, Status: "success"}, nil
}

func TestClassifyHandler(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{"greeting"}}
	h := NewClassifyHandler(intent.NewClassifier(intent.NewLocalModel(), gen, 0.40))

	conv := model.NewConversationState()
	conv.KnowledgeGrounded = true // stale from a previous traversal

	label := h.Handle(context.Background(), conv, "What does the Basic plan cost?")

	assert.Equal(t, model.IntentProductInquiry, label)
	assert.Equal(t, model.IntentProductInquiry, conv.LastIntent)
	assert.False(t, conv.KnowledgeGrounded, "grounding must reset on every classify")
	require.Len(t, conv.History, 1)
	assert.Equal(t, model.RoleUser, conv.History[0].Role)
	assert.Equal(t, "What does the Basic plan cost?", conv.History[0].Content)
}

func TestRetrieveHandlerGrounding(t *testing.T) {
	conv := model.NewConversationState()
	h := NewRetrieveHandler(&stubKB{text: "  Basic Plan details: ...  "})

	text := h.Handle(context.Background(), conv, "price?")
	assert.Equal(t, "Basic Plan details: ...", text)
	assert.True(t, conv.KnowledgeGrounded)
}

func TestRetrieveHandlerDegradesOnError(t *testing.T) {
	conv := model.NewConversationState()
	conv.KnowledgeGrounded = true
	h := NewRetrieveHandler(&stubKB{err: errors.New("store offline")})

	text := h.Handle(context.Background(), conv, "price?")
	assert.Empty(t, text)
	assert.False(t, conv.KnowledgeGrounded)
}

func TestRetrieveHandlerNoMatch(t *testing.T) {
	conv := model.NewConversationState()
	h := NewRetrieveHandler(&stubKB{text: ""})

	assert.Empty(t, h.Handle(context.Background(), conv, "what about the weather"))
	assert.False(t, conv.KnowledgeGrounded)
}

func TestCollectHandlerIncrementalCapture(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{
		`{"name": "Asha", "email": null, "platform": null}`,
		`{"name": null, "email": "asha@example.com", "platform": null}`,
		`{"name": "Ignored Override", "email": null, "platform": "YouTube"}`,
	}}
	capturer := &recordingCapturer{}
	h := NewCollectHandler(gen, capturer)
	conv := model.NewConversationState()
	ctx := context.Background()

	reply, err := h.Handle(ctx, conv, "I'm Asha, sign me up")
	require.NoError(t, err)
	assert.True(t, conv.CollectingLead)
	assert.Equal(t, "Great! To complete your signup, I still need your email, platform.", reply)

	reply, err = h.Handle(ctx, conv, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Great! To complete your signup, I still need your platform.", reply)

	reply, err = h.Handle(ctx, conv, "I post on YouTube")
	require.NoError(t, err)
	assert.Contains(t, reply, "Lead captured successfully (ref lead-123)")

	require.Len(t, capturer.captured, 1)
	// first non-empty value per field wins across the whole cycle
	assert.Equal(t, model.LeadRecord{Name: "Asha", Email: "asha@example.com", Platform: "YouTube"}, capturer.captured[0])

	assert.False(t, conv.CollectingLead)
	assert.Empty(t, conv.Name)
	assert.Equal(t, model.IntentPostLead, conv.LastIntent)
	assert.True(t, conv.LeadJustCaptured)
}

func TestCollectHandlerExtractionFailureStillAsks(t *testing.T) {
	gen := &scriptedGenerator{err: errors.New("model unavailable")}
	h := NewCollectHandler(gen, &recordingCapturer{})
	conv := model.NewConversationState()

	reply, err := h.Handle(context.Background(), conv, "sign me up")
	require.NoError(t, err)
	assert.True(t, conv.CollectingLead)
	assert.Equal(t, "Great! To complete your signup, I still need your name, email, platform.", reply)
}

func TestCollectHandlerCaptureErrorPropagates(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{
		`{"name": "Asha", "email": "asha@example.com", "platform": "YouTube"}`,
	}}
	h := NewCollectHandler(gen, &recordingCapturer{err: errors.New("crm rejected payload")})
	conv := model.NewConversationState()

	_, err := h.Handle(context.Background(), conv, "Asha, asha@example.com, YouTube")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capture lead")
	// capture failed, so the cycle is not reset
	assert.True(t, conv.CollectingLead)
	assert.False(t, conv.LeadJustCaptured)
}

func TestRespondHandlerSuccess(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{"  We have two plans, Basic and Pro.  "}}
	h := NewRespondHandler(gen, model.ResponsePromptConfig{BusinessName: "AutoStream", BusinessType: "SaaS video clipping platform"})
	conv := model.NewConversationState()
	conv.AddTurn(model.RoleUser, "what plans do you have?")
	conv.LastIntent = model.IntentProductInquiry
	conv.KnowledgeGrounded = true

	text := h.Handle(context.Background(), conv, "what plans do you have?", "Basic Plan details: ...", "")

	assert.Equal(t, "We have two plans, Basic and Pro.", text)
	last := conv.History[len(conv.History)-1]
	assert.Equal(t, model.RoleAssistant, last.Role)
	assert.Equal(t, text, last.Content)
}

func TestRespondHandlerFallsBackToStagedReply(t *testing.T) {
	gen := &scriptedGenerator{err: errors.New("model unavailable")}
	h := NewRespondHandler(gen, model.ResponsePromptConfig{BusinessName: "AutoStream"})
	conv := model.NewConversationState()
	staged := "Lead captured successfully (ref lead-123). Our team will reach out soon."
	conv.AddTurn(model.RoleAssistant, staged)

	text := h.Handle(context.Background(), conv, "done", "", staged)

	assert.Equal(t, staged, text)
	// the staged reply was already recorded by the collect stage
	require.Len(t, conv.History, 1)
}

func TestRespondHandlerGenericFallback(t *testing.T) {
	gen := &scriptedGenerator{err: errors.New("model unavailable")}
	h := NewRespondHandler(gen, model.ResponsePromptConfig{BusinessName: "AutoStream"})
	conv := model.NewConversationState()

	text := h.Handle(context.Background(), conv, "hello?", "", "")

	assert.Equal(t, FallbackReply, text)
	require.Len(t, conv.History, 1)
	assert.Equal(t, FallbackReply, conv.History[0].Content)
}
