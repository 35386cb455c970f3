package intent

import (
	"context"
	"regexp"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
)

// Keyword sets for the rule pass, checked in priority order:
// high-intent lead > product inquiry > greeting. Matching is whole-word;
// "support" inside an unrelated word must not fire.
var (
	highIntentKeywords = []string{
		"sign up",
		"subscribe",
		"buy",
		"purchase",
		"get started",
		"i want the pro plan",
		"i want to try",
		"ready to",
		"create account",
		"register",
	}
	inquiryKeywords = []string{
		"price",
		"pricing",
		"plan",
		"plans",
		"cost",
		"features",
		"what do you offer",
		"resolution",
		"limits",
		"refund",
		"support",
		"basic",
		"pro",
	}
	greetingKeywords = []string{
		"hi",
		"hello",
		"hey",
		"good morning",
		"good evening",
	}
)

type keywordSet struct {
	label    model.Intent
	patterns []*regexp.Regexp
}

var keywordSets = []keywordSet{
	{model.IntentHighIntentLead, compileWordPatterns(highIntentKeywords)},
	{model.IntentProductInquiry, compileWordPatterns(inquiryKeywords)},
	{model.IntentGreeting, compileWordPatterns(greetingKeywords)},
}

func compileWordPatterns(words []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return patterns
}

// KeywordStrategy is the first cascade pass: whole-word membership against
// the priority-ordered keyword sets. Not decisive when nothing matches.
func KeywordStrategy() Strategy {
	return func(_ context.Context, text string) (model.Intent, bool) {
		for _, set := range keywordSets {
			for _, p := range set.patterns {
				if p.MatchString(text) {
					return set.label, true
				}
			}
		}
		return model.IntentUnknown, false
	}
}
