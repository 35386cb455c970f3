package nodes

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	agentmodel "github.com/InsaneJSK/Inflx-AI/internal/agent/model"
	logx "github.com/InsaneJSK/Inflx-AI/pkg/logger"
)

// ChatModelConfig holds the configuration for chat model creation.
type ChatModelConfig struct {
	APIKey     string
	BaseURL    string
	Classifier *agentmodel.ClassifierConfig
	Extraction *agentmodel.ExtractionModelConfig
	Response   *agentmodel.ResponseModelConfig
}

// ChatModels holds the Gemini model handles the assistant uses: classifier
// fallback, lead extraction, response, and the response fallback. They are
// constructed once at startup and injected wherever needed.
type ChatModels struct {
	Classifier        *gemini.ChatModel
	Extraction        *gemini.ChatModel
	Response          *gemini.ChatModel
	ResponseFallback  *gemini.ChatModel
	ClassifierName    string
	ExtractionName    string
	ResponseName      string
	ResponseFallbName string
}

// NewChatModels creates every chat model over one shared Gemini client.
func NewChatModels(ctx context.Context, config ChatModelConfig) (*ChatModels, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = config.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	newModel := func(name string, temperature float32, maxTokens int) (*gemini.ChatModel, error) {
		cm, err := gemini.NewChatModel(ctx, &gemini.Config{
			Client:      client,
			Model:       name,
			Temperature: &temperature,
			MaxTokens:   &maxTokens,
		})
		if err != nil {
			logx.Error().Err(err).Str("model", name).Msg("Error creating chat model")
			return nil, fmt.Errorf("error creating chat model %s: %w", name, err)
		}
		return cm, nil
	}

	classifier, err := newModel(config.Classifier.Model, config.Classifier.Temperature, config.Classifier.MaxTokens)
	if err != nil {
		return nil, err
	}
	extraction, err := newModel(config.Extraction.Model, config.Extraction.Temperature, config.Extraction.MaxTokens)
	if err != nil {
		return nil, err
	}
	response, err := newModel(config.Response.Model, config.Response.Temperature, config.Response.MaxTokens)
	if err != nil {
		return nil, err
	}
	responseFallback, err := newModel(config.Response.FallbackModel, config.Response.Temperature, config.Response.MaxTokens)
	if err != nil {
		return nil, err
	}

	return &ChatModels{
		Classifier:        classifier,
		Extraction:        extraction,
		Response:          response,
		ResponseFallback:  responseFallback,
		ClassifierName:    config.Classifier.Model,
		ExtractionName:    config.Extraction.Model,
		ResponseName:      config.Response.Model,
		ResponseFallbName: config.Response.FallbackModel,
	}, nil
}

// GeminiGenerator adapts an Eino chat model to the plain prompt-in/text-out
// TextGenerator contract the stage handlers consume.
type GeminiGenerator struct {
	cm        model.BaseChatModel
	modelName string
}

func NewGeminiGenerator(cm model.BaseChatModel, modelName string) *GeminiGenerator {
	return &GeminiGenerator{cm: cm, modelName: modelName}
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	out, err := g.cm.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		return "", fmt.Errorf("generate with %s: %w", g.modelName, err)
	}
	if out == nil {
		return "", fmt.Errorf("generate with %s: empty response", g.modelName)
	}
	logUsageCost(g.modelName, out)
	return strings.TrimSpace(out.Content), nil
}

// logUsageCost computes and logs per-call token cost when usage metadata is
// present.
func logUsageCost(modelName string, out *schema.Message) {
	if !agentmodel.CostEnabled() || out.ResponseMeta == nil || out.ResponseMeta.Usage == nil {
		return
	}
	usage := out.ResponseMeta.Usage
	pricing := agentmodel.ResolvePricing(modelName)
	inC, outC, totalC := agentmodel.ComputeCost(usage, pricing)
	logx.Debug().
		Str("model", modelName).
		Int("prompt_tokens", usage.PromptTokens).
		Int("completion_tokens", usage.CompletionTokens).
		Int("total_tokens", usage.TotalTokens).
		Float64("input_cost_usd", inC).
		Float64("output_cost_usd", outC).
		Float64("total_cost_usd", totalC).
		Msg("LLM usage")
}

// FallbackGenerator chains two generators: when the primary fails, the
// secondary is tried before the error surfaces.
type FallbackGenerator struct {
	primary   agentmodel.TextGenerator
	secondary agentmodel.TextGenerator
}

func NewFallbackGenerator(primary, secondary agentmodel.TextGenerator) *FallbackGenerator {
	return &FallbackGenerator{primary: primary, secondary: secondary}
}

func (g *FallbackGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := g.primary.Generate(ctx, prompt)
	if err == nil {
		return text, nil
	}
	if g.secondary == nil {
		return "", err
	}
	logx.Warn().Err(err).Msg("primary model failed; trying fallback model")
	text, ferr := g.secondary.Generate(ctx, prompt)
	if ferr != nil {
		return "", fmt.Errorf("fallback after %v: %w", err, ferr)
	}
	return text, nil
}

var (
	_ agentmodel.TextGenerator = (*GeminiGenerator)(nil)
	_ agentmodel.TextGenerator = (*FallbackGenerator)(nil)
)
