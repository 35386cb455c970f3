// Package intent classifies user messages into the assistant's fixed
// taxonomy using a cascade of strategies: a whole-word keyword pass, a local
// statistical model, and a generative fallback. The first decisive strategy
// wins; a service failure in the fallback degrades to IntentUnknown instead
// of propagating.
package intent

import (
	"context"
	"strings"
	"unicode"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/graph/prompts"
	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
	logx "github.com/InsaneJSK/Inflx-AI/pkg/logger"
)

// Strategy attempts to classify normalized text. The second return reports
// whether the strategy was decisive.
type Strategy func(ctx context.Context, text string) (model.Intent, bool)

// Classifier runs an ordered strategy cascade.
type Classifier struct {
	strategies []Strategy
}

// NewClassifier assembles the standard cascade: keywords, then the local
// model gated by the confidence threshold, then the generative fallback.
func NewClassifier(local *LocalModel, gen model.TextGenerator, threshold float64) *Classifier {
	return &Classifier{
		strategies: []Strategy{
			KeywordStrategy(),
			LocalStrategy(local, threshold),
			GenerativeStrategy(gen),
		},
	}
}

// Classify returns exactly one intent label for the message. It never fails;
// when no strategy is decisive the result is IntentUnknown.
func (c *Classifier) Classify(ctx context.Context, message string) model.Intent {
	text := Normalize(message)
	for _, s := range c.strategies {
		if label, ok := s(ctx, text); ok {
			return label
		}
	}
	return model.IntentUnknown
}

// Normalize lowercases, trims, and strips punctuation and symbols, matching
// the preprocessing the local model was built with.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// LocalStrategy accepts the local model's label when its confidence reaches
// the threshold.
func LocalStrategy(local *LocalModel, threshold float64) Strategy {
	return func(_ context.Context, text string) (model.Intent, bool) {
		if local == nil || text == "" {
			return model.IntentUnknown, false
		}
		label, confidence := local.Predict(text)
		logx.Debug().
			Str("label", string(label)).
			Float64("confidence", confidence).
			Msg("local intent prediction")
		if confidence < threshold {
			return model.IntentUnknown, false
		}
		return label, true
	}
}

// GenerativeStrategy asks the generative service for exactly one label word.
// It is always decisive: service failures and out-of-taxonomy answers map to
// IntentUnknown so the cascade boundary never raises.
func GenerativeStrategy(gen model.TextGenerator) Strategy {
	return func(ctx context.Context, text string) (model.Intent, bool) {
		if gen == nil {
			return model.IntentUnknown, true
		}
		prompt, err := prompts.RenderClassify(ctx, text)
		if err != nil {
			logx.Error().Err(err).Msg("render classify prompt")
			return model.IntentUnknown, true
		}
		raw, err := gen.Generate(ctx, prompt)
		if err != nil {
			logx.Warn().Err(err).Msg("generative intent fallback failed; defaulting")
			return model.IntentUnknown, true
		}
		fields := strings.Fields(strings.ToLower(raw))
		if len(fields) == 0 {
			return model.IntentUnknown, true
		}
		return model.ParseIntent(fields[0]), true
	}
}
