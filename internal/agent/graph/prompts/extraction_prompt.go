package prompts

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
)

//go:embed template/extraction_prompt.txt
var extractionPrompt string

// RenderExtraction renders the structured lead-extraction prompt. Known field
// values are included so the model does not re-extract what is already set.
func RenderExtraction(ctx context.Context, conv *model.ConversationState, message string) (string, error) {
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(extractionPrompt),
	)
	msgs, err := tpl.Format(ctx, map[string]any{
		"Transcript": conv.Transcript(),
		"Message":    message,
		"Name":       orNone(conv.Name),
		"Email":      orNone(conv.Email),
		"Platform":   orNone(conv.Platform),
	})
	if err != nil {
		return "", fmt.Errorf("extraction prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("extraction prompt render: empty result")
	}
	return msgs[0].Content, nil
}

func orNone(v string) string {
	if v == "" {
		return "None"
	}
	return v
}
