package nodes

import (
	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
)

// Node names for the dialogue stage graph.
const (
	NodeClassifier    = "classifier"
	NodeRetriever     = "retriever"
	NodeLeadCollector = "lead_collector"
	NodeResponder     = "responder"
)

// Route is the pure dialogue router: a function of CollectingLead and
// LastIntent only, no side effects. The sticky lead-mode check runs before
// the freshly detected intent, so once collection starts it continues until
// completion or reset. Unrecognized labels fall through to the responder.
func Route(conv *model.ConversationState) string {
	if conv.CollectingLead {
		return NodeLeadCollector
	}
	switch conv.LastIntent {
	case model.IntentProductInquiry:
		return NodeRetriever
	case model.IntentHighIntentLead:
		return NodeLeadCollector
	default:
		return NodeResponder
	}
}
