package prompts

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

//go:embed template/classify_prompt.txt
var classifyPrompt string

// RenderClassify renders the constrained classification prompt via the Eino
// prompt component, so prompt callbacks fire for the classifier fallback too.
func RenderClassify(ctx context.Context, message string) (string, error) {
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(classifyPrompt),
	)
	msgs, err := tpl.Format(ctx, map[string]any{
		"Message": message,
	})
	if err != nil {
		return "", fmt.Errorf("classify prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("classify prompt render: empty result")
	}
	return msgs[0].Content, nil
}
