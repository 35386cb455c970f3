package nodes

import (
	"context"
	"fmt"
	"strings"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/graph/parsers"
	"github.com/InsaneJSK/Inflx-AI/internal/agent/graph/prompts"
	"github.com/InsaneJSK/Inflx-AI/internal/agent/intent"
	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
	logx "github.com/InsaneJSK/Inflx-AI/pkg/logger"
)

// FallbackReply is returned when response generation fails and no staged
// reply exists; the user always receives some text for every turn.
const FallbackReply = "Sorry, I'm having trouble answering right now. Please try again in a moment."

// ClassifyHandler runs the classify stage: record the user turn, classify
// the message, and write the detected intent into the conversation.
type ClassifyHandler struct {
	classifier *intent.Classifier
}

func NewClassifyHandler(classifier *intent.Classifier) *ClassifyHandler {
	return &ClassifyHandler{classifier: classifier}
}

func (h *ClassifyHandler) Handle(ctx context.Context, conv *model.ConversationState, query string) model.Intent {
	// grounding only ever describes the reply being built this traversal
	conv.KnowledgeGrounded = false
	conv.AddTurn(model.RoleUser, query)

	label := h.classifier.Classify(ctx, query)
	conv.LastIntent = label
	logx.Debug().Str("intent", string(label)).Msg("message classified")
	return label
}

// RetrieveHandler runs the knowledge lookup stage. It is a pass-through over
// the collaborator: hard lookup failures degrade to "nothing found" and the
// grounded flag tracks whether any text came back.
type RetrieveHandler struct {
	kb model.KnowledgeBase
}

func NewRetrieveHandler(kb model.KnowledgeBase) *RetrieveHandler {
	return &RetrieveHandler{kb: kb}
}

func (h *RetrieveHandler) Handle(ctx context.Context, conv *model.ConversationState, query string) string {
	text, err := h.kb.Retrieve(ctx, query)
	if err != nil {
		logx.Warn().Err(err).Msg("knowledge lookup failed; treating as no match")
		text = ""
	}
	text = strings.TrimSpace(text)
	conv.KnowledgeGrounded = text != ""
	return text
}

// CollectHandler runs the lead-collection stage: extract fields from the
// message plus recent history, merge first-non-empty-wins, then either ask
// for what is still missing or capture the completed lead.
type CollectHandler struct {
	gen      model.TextGenerator
	capturer model.LeadCapturer
}

func NewCollectHandler(gen model.TextGenerator, capturer model.LeadCapturer) *CollectHandler {
	return &CollectHandler{gen: gen, capturer: capturer}
}

func (h *CollectHandler) Handle(ctx context.Context, conv *model.ConversationState, query string) (string, error) {
	conv.CollectingLead = true

	var rec model.LeadRecord
	prompt, err := prompts.RenderExtraction(ctx, conv, query)
	if err != nil {
		logx.Error().Err(err).Msg("render extraction prompt; continuing with empty extraction")
	} else {
		raw, gerr := h.gen.Generate(ctx, prompt)
		if gerr != nil {
			logx.Warn().Err(gerr).Msg("lead extraction failed; continuing with empty extraction")
		} else {
			rec = parsers.ParseLeadRecord(raw)
		}
	}
	conv.MergeLead(rec)

	missing := conv.MissingLeadFields()
	if len(missing) > 0 {
		ask := "Great! To complete your signup, I still need your " + strings.Join(missing, ", ") + "."
		conv.AddTurn(model.RoleAssistant, ask)
		return ask, nil
	}

	// completeness was just verified; a validation failure here is a logic
	// bug and must propagate
	receipt, err := h.capturer.Capture(ctx, conv.Name, conv.Email, conv.Platform)
	if err != nil {
		return "", fmt.Errorf("capture lead: %w", err)
	}

	conv.ResetLeadCapture()
	conv.LastIntent = model.IntentPostLead
	conv.LeadJustCaptured = true

	reply := fmt.Sprintf("Lead captured successfully (ref %s). Our team will reach out soon.", receipt.ID)
	conv.AddTurn(model.RoleAssistant, reply)
	return reply, nil
}

// RespondHandler runs the final stage: one generation call producing the
// user-facing reply, grounded in retrieved text when present. Generation
// failure degrades to the staged collect-lead reply when one exists, else to
// the generic fallback; no error escapes the stage.
type RespondHandler struct {
	gen model.TextGenerator
	cfg model.ResponsePromptConfig
}

func NewRespondHandler(gen model.TextGenerator, cfg model.ResponsePromptConfig) *RespondHandler {
	return &RespondHandler{gen: gen, cfg: cfg}
}

func (h *RespondHandler) Handle(ctx context.Context, conv *model.ConversationState, query, retrieved, staged string) string {
	var text string
	prompt, err := prompts.RenderResponse(ctx, h.cfg, conv, prompts.ResponseVars{
		Message:   query,
		Intent:    conv.LastIntent,
		Knowledge: retrieved,
		Grounded:  conv.KnowledgeGrounded,
		PostLead:  conv.LeadJustCaptured,
	})
	if err != nil {
		logx.Error().Err(err).Msg("render response prompt")
	} else {
		text, err = h.gen.Generate(ctx, prompt)
		if err != nil {
			logx.Warn().Err(err).Msg("response generation failed; degrading to fallback reply")
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		if staged != "" {
			// the staged reply is already in history from the collect stage
			return staged
		}
		text = FallbackReply
	}
	conv.AddTurn(model.RoleAssistant, text)
	return text
}
