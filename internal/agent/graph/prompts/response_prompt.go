package prompts

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
)

//go:embed template/response_prompt.txt
var responsePrompt string

// ResponseVars carries the per-traversal inputs for the response prompt.
type ResponseVars struct {
	Message   string
	Intent    model.Intent
	Knowledge string
	Grounded  bool
	PostLead  bool
}

// RenderResponse renders the final generation prompt. The knowledge section
// either grounds the model strictly in the retrieved text or forbids
// fabrication outright; the post-lead note switches the tone from selling to
// support after a capture.
func RenderResponse(ctx context.Context, cfg model.ResponsePromptConfig, conv *model.ConversationState, vars ResponseVars) (string, error) {
	knowledgeSection := "No reliable info found in the knowledge base. Do NOT invent product details."
	if vars.Grounded && vars.Knowledge != "" {
		knowledgeSection = "Use the following official knowledge base info and keep your answer grounded to it:\n" + vars.Knowledge
	}
	postLeadNote := ""
	if vars.PostLead {
		postLeadNote = "NOTE: The user has successfully signed up. Do NOT try to sell again, focus on support and answering."
	}

	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(responsePrompt),
	)
	msgs, err := tpl.Format(ctx, map[string]any{
		"BusinessName":     cfg.BusinessName,
		"BusinessType":     cfg.BusinessType,
		"Transcript":       conv.Transcript(),
		"Message":          vars.Message,
		"Intent":           string(vars.Intent),
		"KnowledgeSection": knowledgeSection,
		"PostLeadNote":     postLeadNote,
	})
	if err != nil {
		return "", fmt.Errorf("response prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("response prompt render: empty result")
	}
	return msgs[0].Content, nil
}
