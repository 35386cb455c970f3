package prompts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
)

func TestRenderClassify(t *testing.T) {
	out, err := RenderClassify(context.Background(), "what is the price")
	require.NoError(t, err)
	assert.Contains(t, out, "what is the price")
	assert.NotContains(t, out, "{{", "all placeholders must be substituted")
}

func TestRenderExtractionIncludesKnownFields(t *testing.T) {
	conv := model.NewConversationState()
	conv.AddTurn(model.RoleUser, "sign me up")
	conv.Name = "Asha"

	out, err := RenderExtraction(context.Background(), conv, "my email is asha@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Asha")
	assert.Contains(t, out, "my email is asha@example.com")
	assert.Contains(t, out, "user: sign me up")
	// unset fields render as None
	assert.Contains(t, out, "None")
	assert.NotContains(t, out, "{{")
}

func TestRenderResponseKnowledgeSection(t *testing.T) {
	conv := model.NewConversationState()
	cfg := model.ResponsePromptConfig{BusinessName: "AutoStream", BusinessType: "SaaS video clipping platform"}

	out, err := RenderResponse(context.Background(), cfg, conv, ResponseVars{
		Message:   "price?",
		Intent:    model.IntentProductInquiry,
		Knowledge: "Basic Plan details: Price: $29/month",
		Grounded:  true,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "AutoStream")
	assert.Contains(t, out, "Basic Plan details: Price: $29/month")
	assert.NotContains(t, out, "Do NOT invent product details")

	out, err = RenderResponse(context.Background(), cfg, conv, ResponseVars{
		Message: "price?",
		Intent:  model.IntentProductInquiry,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Do NOT invent product details")
}

func TestRenderResponsePostLeadNote(t *testing.T) {
	conv := model.NewConversationState()
	cfg := model.ResponsePromptConfig{BusinessName: "AutoStream"}

	out, err := RenderResponse(context.Background(), cfg, conv, ResponseVars{
		Message:  "thanks!",
		Intent:   model.IntentPostLead,
		PostLead: true,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Do NOT try to sell again")
}
