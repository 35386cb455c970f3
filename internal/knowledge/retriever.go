// Package knowledge serves canned product and policy text from the embedded
// knowledge base. It is a pure lookup: the retriever never fabricates
// content, and an empty result means "nothing relevant found".
package knowledge

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/intent"
	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
)

//go:embed kb/knowledge_base.json
var knowledgeBaseJSON []byte

// planAttributes fixes the rendering order of plan details.
var planAttributes = []string{"Price", "Limits", "Quality", "Additional Features"}

// attributeMap maps query words to plan attributes or policies.
var attributeMap = map[string]string{
	"price":      "Price",
	"cost":       "Price",
	"limit":      "Limits",
	"video":      "Limits",
	"quality":    "Quality",
	"resolution": "Quality",
	"feature":    "Additional Features",
	"caption":    "Additional Features",
	"refund":     "policies",
	"support":    "policies",
}

var genericPlanTerms = map[string]struct{}{
	"plan":         {},
	"plans":        {},
	"pricing":      {},
	"subscription": {},
}

type knowledgeBase struct {
	Plans    map[string]map[string]string `json:"AutoStream Pricing & Features"`
	Policies []string                     `json:"Company Policies"`
}

// Retriever answers product/policy queries from the embedded knowledge base.
// It implements model.KnowledgeBase.
type Retriever struct {
	kb knowledgeBase
}

// NewRetriever decodes the embedded knowledge base.
func NewRetriever() (*Retriever, error) {
	var kb knowledgeBase
	if err := json.Unmarshal(knowledgeBaseJSON, &kb); err != nil {
		return nil, fmt.Errorf("decode knowledge base: %w", err)
	}
	if len(kb.Plans) == 0 {
		return nil, fmt.Errorf("knowledge base has no plans")
	}
	return &Retriever{kb: kb}, nil
}

// Retrieve returns formatted plan or policy text for the query, or "" when
// the query mentions nothing the knowledge base covers.
func (r *Retriever) Retrieve(_ context.Context, query string) (string, error) {
	text := intent.Normalize(query)
	words := strings.Fields(text)

	var plan string
	if containsWord(words, "basic") {
		plan = "Basic Plan"
	} else if containsWord(words, "pro") {
		plan = "Pro Plan"
	}

	genericPlan := false
	attributes := map[string]struct{}{}
	for _, w := range words {
		if _, ok := genericPlanTerms[w]; ok {
			genericPlan = true
		}
		if attr, ok := attributeMap[strings.TrimSuffix(w, "s")]; ok {
			attributes[attr] = struct{}{}
		}
	}

	// policy questions win over plan formatting
	if _, ok := attributes["policies"]; ok {
		return "Company Policies:\n- " + strings.Join(r.kb.Policies, "\n- "), nil
	}

	// explicit plan mention always returns the full plan
	if plan != "" {
		return r.formatPlan(plan), nil
	}

	// generic plan language or any attribute mention returns both plans in full
	if genericPlan || len(attributes) > 0 {
		return r.formatPlan("Basic Plan") + "\n\n" + r.formatPlan("Pro Plan"), nil
	}

	return "", nil
}

func (r *Retriever) formatPlan(name string) string {
	details := r.kb.Plans[name]
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" details:")
	for _, attr := range planAttributes {
		if v, ok := details[attr]; ok {
			b.WriteString("\n")
			b.WriteString(attr)
			b.WriteString(": ")
			b.WriteString(v)
		}
	}
	return b.String()
}

func containsWord(words []string, target string) bool {
	for _, w := range words {
		if w == target {
			return true
		}
	}
	return false
}

var _ model.KnowledgeBase = (*Retriever)(nil)
