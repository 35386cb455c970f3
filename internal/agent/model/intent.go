package model

import "strings"

// Intent is the classified purpose of a user message, drawn from a small
// fixed label set.
type Intent string

const (
	// IntentGreeting covers small talk and salutations.
	IntentGreeting Intent = "greeting"
	// IntentProductInquiry covers questions about plans, pricing, features.
	IntentProductInquiry Intent = "product_inquiry"
	// IntentHighIntentLead covers explicit signup/purchase interest.
	IntentHighIntentLead Intent = "high_intent_lead"
	// IntentPostLead marks the turn right after a successful lead capture.
	IntentPostLead Intent = "post_lead"
	// IntentUnknown is the safe default when no strategy is decisive.
	IntentUnknown Intent = "unknown"
)

// ParseIntent normalises a free-text label into the taxonomy. Anything
// outside the three classifiable labels maps to IntentUnknown.
func ParseIntent(s string) Intent {
	switch Intent(strings.ToLower(strings.TrimSpace(s))) {
	case IntentGreeting:
		return IntentGreeting
	case IntentProductInquiry:
		return IntentProductInquiry
	case IntentHighIntentLead:
		return IntentHighIntentLead
	default:
		return IntentUnknown
	}
}
